package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"backoffice/internal/domain"
)

func TestNewWizard_DefaultSchedule(t *testing.T) {
	w := NewWizard()
	require.Len(t, w.Schedule, 7)

	for _, d := range w.Schedule {
		switch d.Day {
		case "Dim", "Sam":
			assert.False(t, d.Enabled, d.Day)
			assert.Empty(t, d.Slots, d.Day)
		default:
			assert.True(t, d.Enabled, d.Day)
			assert.Equal(t, []domain.TimeSlot{{Start: "10:00", End: "16:00"}}, d.Slots, d.Day)
		}
	}
	assert.Equal(t, "Dim", w.Schedule[0].Day)
	assert.Len(t, w.Participants, 4)
}

func TestWizard_Steps(t *testing.T) {
	w := NewWizard()
	w.Prev()
	assert.Equal(t, 1, w.Step)

	for i := 0; i < 10; i++ {
		w.Next()
	}
	assert.Equal(t, 4, w.Step)
	assert.True(t, w.Last())
	assert.Equal(t, "Prix", w.Current().Title)

	w.Step = 0
	assert.Equal(t, "Généralités", w.Current().Title)
}

func TestWizard_ScheduleEdits(t *testing.T) {
	w := NewWizard()

	w.ToggleDay("Sam", true)
	sam, _ := w.Day("Sam")
	assert.True(t, sam.Enabled)
	assert.Len(t, sam.Slots, 1)

	w.AddSlot("Lun")
	w.SetSlot("Lun", 1, "17:00", "19:45")
	lun, _ := w.Day("Lun")
	require.Len(t, lun.Slots, 2)
	assert.Equal(t, domain.TimeSlot{Start: "17:00", End: "19:45"}, lun.Slots[1])

	w.SetSlot("Lun", 1, "17:05", "25:00")
	lun, _ = w.Day("Lun")
	assert.Equal(t, domain.TimeSlot{Start: "17:00", End: "19:45"}, lun.Slots[1], "off-grid times are ignored")

	w.RemoveSlot("Lun", 0)
	lun, _ = w.Day("Lun")
	require.Len(t, lun.Slots, 1)
	assert.Equal(t, "17:00", lun.Slots[0].Start)

	w.RemoveSlot("Lun", 0)
	lun, _ = w.Day("Lun")
	assert.Len(t, lun.Slots, 1, "the last slot cannot be removed")

	w.AddSlot("Dim")
	dim, _ := w.Day("Dim")
	assert.Empty(t, dim.Slots, "disabled days take no slots")

	w.ToggleDay("Mar", false)
	mar, _ := w.Day("Mar")
	assert.Empty(t, mar.Slots)
}

func TestWizard_CopySlotsToAll(t *testing.T) {
	w := NewWizard()
	w.AddSlot("Lun")
	w.SetSlot("Lun", 1, "18:00", "20:00")

	w.CopySlotsToAll("Lun")

	for _, d := range w.Schedule {
		if !d.Enabled {
			assert.Empty(t, d.Slots, d.Day)
			continue
		}
		assert.Len(t, d.Slots, 2, d.Day)
	}

	w.SetSlot("Mar", 0, "08:00", "09:00")
	lun, _ := w.Day("Lun")
	assert.Equal(t, "10:00", lun.Slots[0].Start, "copies do not share storage")
}

func TestWizard_ParticipantsAndPrices(t *testing.T) {
	w := NewWizard()
	w.SetParticipantLimit("Adultes", -3, 99)
	w.SetParticipantLimit("Inconnu", 1, 2)
	assert.Equal(t, domain.ParticipantLimit{Category: "Adultes", Min: 0, Max: 20}, w.Participants[1])

	w.SetPrices(45, -1)
	assert.Equal(t, 45.0, w.AdultPrice)
	assert.Equal(t, 0.0, w.ChildPrice)
}

func TestWizard_Request(t *testing.T) {
	w := NewWizard()
	w.Name = "Excursion à Petite Terre"
	w.FullPaymentRequired = true

	req := w.Request()
	assert.Equal(t, domain.CreateActivityRequest{
		Name:                "Excursion à Petite Terre",
		Code:                "excursion-à-petite-terre",
		FullPaymentRequired: true,
	}, req)

	w.Code = "PT-01"
	assert.Equal(t, "PT-01", w.Request().Code)
}

func TestTimeOptions(t *testing.T) {
	require.Len(t, TimeOptions, 96)
	assert.Equal(t, "00:00", TimeOptions[0])
	assert.Equal(t, "00:15", TimeOptions[1])
	assert.Equal(t, "23:45", TimeOptions[95])
}
