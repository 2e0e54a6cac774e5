package store

import "github.com/jomidar/jomidar-api/internal/models"

// Deep-copy helpers. Snapshots and read accessors must never share backing
// slices or pointer fields with the live state.

func cloneProperty(p models.Property) models.Property {
	units := make([]models.Unit, len(p.Units))
	copy(units, p.Units)
	p.Units = units
	return p
}

func cloneProperties(ps []models.Property) []models.Property {
	out := make([]models.Property, len(ps))
	for i := range ps {
		out[i] = cloneProperty(ps[i])
	}
	return out
}

func cloneTenant(t models.Tenant) models.Tenant {
	t.Documents = cloneDocuments(t.Documents)
	t.PaymentHistory = clonePayments(t.PaymentHistory)
	return t
}

func cloneTenants(ts []models.Tenant) []models.Tenant {
	out := make([]models.Tenant, len(ts))
	for i := range ts {
		out[i] = cloneTenant(ts[i])
	}
	return out
}

func clonePayment(p models.Payment) models.Payment {
	if p.ExpectedAmount != nil {
		v := *p.ExpectedAmount
		p.ExpectedAmount = &v
	}
	if p.RemainingAmount != nil {
		v := *p.RemainingAmount
		p.RemainingAmount = &v
	}
	return p
}

func clonePayments(ps []models.Payment) []models.Payment {
	out := make([]models.Payment, len(ps))
	for i := range ps {
		out[i] = clonePayment(ps[i])
	}
	return out
}

func cloneDocuments(ds []models.Document) []models.Document {
	out := make([]models.Document, len(ds))
	copy(out, ds)
	return out
}

func cloneUsers(us []models.User) []models.User {
	out := make([]models.User, len(us))
	copy(out, us)
	return out
}
