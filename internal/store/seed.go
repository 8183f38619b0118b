package store

import "github.com/hitoshi/saathi/internal/model"

// SeedPatientID はデモ患者のID。
// 単一患者データセットではセッションユーザーのIDと同一視される。
const SeedPatientID = "patient1"

// seedPatients は起動時の患者コレクションを返す。
func seedPatients() []model.Patient {
	return []model.Patient{
		{
			User: model.User{
				ID:       SeedPatientID,
				Name:     "Rajesh Kumar",
				Phone:    "+91-9876543210",
				Role:     model.RolePatient,
				Language: model.LanguageEnglish,
			},
			Medications: []model.Medication{
				{
					ID:           "med1",
					Name:         "Metformin",
					Dosage:       "500mg",
					Frequency:    "Twice Daily",
					ReminderTime: "08:00",
					Instructions: "Take with food",
					Taken:        false,
				},
			},
			Symptoms:   []model.Symptom{},
			Caretakers: []string{"caretaker1"},
			Conditions: []string{"Type 2 Diabetes"},
		},
	}
}

// seedCatalog は介護者カタログのシードデータを返す。
func seedCatalog() []model.CaretakerOption {
	return []model.CaretakerOption{
		{
			ID:             "1",
			Name:           "Priya Sharma",
			Experience:     "5 years",
			Rating:         4.8,
			Specialization: "Elderly Care",
			Available:      true,
		},
		{
			ID:             "2",
			Name:           "Rajesh Kumar",
			Experience:     "8 years",
			Rating:         4.9,
			Specialization: "Medical Assistant",
			Available:      true,
		},
		{
			ID:             "3",
			Name:           "Sunita Devi",
			Experience:     "3 years",
			Rating:         4.7,
			Specialization: "Home Care",
			Available:      false,
		},
	}
}
