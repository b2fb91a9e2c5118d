package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"backoffice/internal/domain"
	apperrors "backoffice/pkg/errors"
)

type stubLister struct {
	providers  []domain.Provider
	activities []domain.Activity
	err        error
}

func (s *stubLister) ListProviders(ctx context.Context) ([]domain.Provider, error) {
	return s.providers, s.err
}

func (s *stubLister) ListActivities(ctx context.Context) ([]domain.Activity, error) {
	return s.activities, s.err
}

// run executes cmd under a bare root that injects l instead of a real client
func run(t *testing.T, l lister, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()

	root := &cobra.Command{Use: "catalog", SilenceUsage: true, SilenceErrors: true}
	root.PersistentFlags().Bool("json", false, "")
	root.AddCommand(cmd)

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(withGateway(context.Background(), l))
	return out.String(), err
}

func TestProvidersCommand(t *testing.T) {
	l := &stubLister{providers: []domain.Provider{
		{Name: "Alice Martin", Email: "alice@example.com", Company: "Kayak Club"},
		{Name: "Bob Durand", Email: "bob@example.com", Company: "Rando Sud"},
	}}

	out, err := run(t, l, NewProvidersCommand(), "providers", "--search", "kayak")
	require.NoError(t, err)
	assert.Contains(t, out, "NOM")
	assert.Contains(t, out, "Alice Martin")
	assert.NotContains(t, out, "Bob Durand")

	out, err = run(t, l, NewProvidersCommand(), "providers", "--email", "nothing-matches")
	require.NoError(t, err)
	assert.Equal(t, "No providers found\n", out)
}

func TestActivitiesCommand_JSON(t *testing.T) {
	l := &stubLister{activities: []domain.Activity{
		{ID: "1", Code: "kayak", Name: "Kayak", ActivityLocation: "Marseille"},
		{ID: "2", Code: "rando", Name: "Randonnée", DepartureLocation: "Cassis"},
	}}

	out, err := run(t, l, NewActivitiesCommand(), "activities", "--location", "cassis", "--json")
	require.NoError(t, err)

	var got []domain.Activity
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "rando", got[0].Code)
}

func TestActivitiesCommand_FetchError(t *testing.T) {
	l := &stubLister{err: apperrors.NewExternalError("Failed to fetch activities", assert.AnError)}

	_, err := run(t, l, NewActivitiesCommand(), "activities")
	require.Error(t, err)
	assert.Equal(t, "Failed to fetch activities", err.Error())
}
