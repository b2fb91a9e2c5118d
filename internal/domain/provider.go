package domain

// Provider represents a vendor supplying activities (prestataire)
type Provider struct {
	ID      string `json:"id"`
	Name    string `json:"nom"`
	Email   string `json:"email"`
	Phone   string `json:"telephone"`
	Company string `json:"nomSociete"`
}

// CreateProviderRequest is the body posted to the remote API to create a provider
type CreateProviderRequest struct {
	Name    string `json:"nom"`
	Email   string `json:"email"`
	Phone   string `json:"telephone"`
	Company string `json:"nomSociete"`
}

// ProviderFilters narrows the providers list. An empty field places no constraint.
type ProviderFilters struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Company string `json:"company"`
}

// Active reports whether at least one criterion is set
func (f ProviderFilters) Active() bool {
	return f.Name != "" || f.Email != "" || f.Phone != "" || f.Company != ""
}
