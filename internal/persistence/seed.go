package persistence

import "github.com/jomidar/jomidar-api/internal/models"

// SeedSnapshot returns the default dataset used when no snapshot has been
// saved yet, so a fresh install starts with a small populated portfolio.
func SeedSnapshot() models.Snapshot {
	return models.Snapshot{
		Version: models.SnapshotVersion,
		Properties: []models.Property{
			{
				ID:      "1",
				Name:    "Bashundhara Residency",
				Address: "Block D, Road 5, Bashundhara R/A, Dhaka",
				Units: []models.Unit{
					{
						ID:         "u1",
						PropertyID: "1",
						UnitNumber: "3A",
						Floor:      "3rd",
						Size:       "1200",
						Bedrooms:   3,
						Bathrooms:  2,
						Rent:       18000,
						Status:     models.UnitStatusOccupied,
						TenantID:   "t1",
					},
					{
						ID:         "u2",
						PropertyID: "1",
						UnitNumber: "4B",
						Floor:      "4th",
						Size:       "1100",
						Bedrooms:   2,
						Bathrooms:  2,
						Rent:       15000,
						Status:     models.UnitStatusOccupied,
						TenantID:   "t2",
					},
					{
						ID:         "u3",
						PropertyID: "1",
						UnitNumber: "5A",
						Floor:      "5th",
						Size:       "1300",
						Bedrooms:   3,
						Bathrooms:  2,
						Rent:       20000,
						Status:     models.UnitStatusVacant,
					},
				},
			},
			{
				ID:      "2",
				Name:    "Gulshan Heights",
				Address: "House 7, Road 14, Gulshan-1, Dhaka",
				Units: []models.Unit{
					{
						ID:         "u4",
						PropertyID: "2",
						UnitNumber: "2A",
						Floor:      "2nd",
						Size:       "1500",
						Bedrooms:   3,
						Bathrooms:  3,
						Rent:       30000,
						Status:     models.UnitStatusOccupied,
						TenantID:   "t3",
					},
					{
						ID:         "u5",
						PropertyID: "2",
						UnitNumber: "3B",
						Floor:      "3rd",
						Size:       "1400",
						Bedrooms:   3,
						Bathrooms:  2,
						Rent:       28000,
						Status:     models.UnitStatusVacant,
					},
				},
			},
		},
		Tenants: []models.Tenant{
			{
				ID:              "t1",
				Name:            "Rahim Ahmed",
				Phone:           "01712345678",
				Email:           "rahim@example.com",
				NIDNumber:       "1234567890",
				UnitID:          "u1",
				PropertyID:      "1",
				LeaseStart:      "2026-01-01",
				LeaseEnd:        "2027-01-01",
				MonthlyRent:     18000,
				SecurityDeposit: 36000,
				Documents:       []models.Document{},
				PaymentHistory:  []models.Payment{},
			},
			{
				ID:              "t2",
				Name:            "Karim Hossain",
				Phone:           "01812345678",
				Email:           "karim@example.com",
				NIDNumber:       "0987654321",
				UnitID:          "u2",
				PropertyID:      "1",
				LeaseStart:      "2026-03-01",
				LeaseEnd:        "2027-03-01",
				MonthlyRent:     15000,
				SecurityDeposit: 30000,
				Documents:       []models.Document{},
				PaymentHistory:  []models.Payment{},
			},
			{
				ID:              "t3",
				Name:            "Fatema Begum",
				Phone:           "01912345678",
				Email:           "fatema@example.com",
				NIDNumber:       "5678901234",
				UnitID:          "u4",
				PropertyID:      "2",
				LeaseStart:      "2026-02-01",
				LeaseEnd:        "2027-02-01",
				MonthlyRent:     30000,
				SecurityDeposit: 60000,
				Documents:       []models.Document{},
				PaymentHistory:  []models.Payment{},
			},
		},
		Payments: []models.Payment{
			{
				ID:             "pay1",
				TenantID:       "t1",
				UnitID:         "u1",
				PropertyID:     "1",
				Amount:         18000,
				Date:           "2026-07-03",
				Type:           models.PaymentTypeRent,
				Status:         models.PaymentStatusPaid,
				Month:          "2026-07",
				ExpectedAmount: amount(18000),
			},
			{
				ID:              "pay2",
				TenantID:        "t2",
				UnitID:          "u2",
				PropertyID:      "1",
				Amount:          12000,
				Date:            "2026-07-05",
				Type:            models.PaymentTypeRent,
				Status:          models.PaymentStatusUnderpaid,
				Month:           "2026-07",
				Notes:           "Partial payment, remainder promised next week",
				ExpectedAmount:  amount(15000),
				RemainingAmount: amount(3000),
			},
			{
				ID:             "pay3",
				TenantID:       "t3",
				UnitID:         "u4",
				PropertyID:     "2",
				Amount:         30000,
				Date:           "2026-08-02",
				Type:           models.PaymentTypeRent,
				Status:         models.PaymentStatusPending,
				Month:          "2026-08",
				ExpectedAmount: amount(30000),
			},
		},
		Documents: []models.Document{
			{
				ID:   "doc1",
				Name: "Lease Agreement - Rahim Ahmed",
				Type: models.DocumentTypeLease,
				Source: models.DocumentSource{
					Kind: models.SourceKindURL,
					URI:  "https://example.com/leases/rahim-ahmed.pdf",
				},
				UploadDate: "2026-01-01",
				RelatedTo:  models.RelatedToTenant,
				RelatedID:  "t1",
			},
		},
		Users: []models.User{},
	}
}

func amount(v float64) *float64 {
	return &v
}
