package model

import "time"

const StatusScheduled = "scheduled"

// Appointment links a patient and a doctor at a combined date+time.
// DateTime is naive (no zone); it stores exactly what the patient submitted.
type Appointment struct {
	ID        int64     `json:"id"`
	PatientID int       `json:"patient_id"`
	DoctorID  int       `json:"doctor_id"`
	DateTime  time.Time `json:"datetime"`
	Status    string    `json:"status"`
}
