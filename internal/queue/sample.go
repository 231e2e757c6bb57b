package queue

// SampleEntries is the demo queue a doctor starts the day with when sample
// seeding is enabled.
func SampleEntries() []Entry {
	return []Entry{
		{
			Name:            "Robert Johnson",
			Complaint:       "Chest pain, shortness of breath",
			RiskLevel:       RiskHigh,
			AppointmentType: InPerson,
			ScheduledTime:   "10:00 AM",
			Phone:           "+1 234 567 8900",
			Arrived:         true,
		},
		{
			Name:            "Maria Garcia",
			Complaint:       "Follow-up consultation",
			RiskLevel:       RiskLow,
			AppointmentType: InPerson,
			ScheduledTime:   "10:30 AM",
			Phone:           "+1 234 567 8901",
			Arrived:         true,
		},
		{
			Name:            "James Wilson",
			Complaint:       "Annual checkup",
			RiskLevel:       RiskLow,
			AppointmentType: InPerson,
			ScheduledTime:   "11:00 AM",
			Phone:           "+1 234 567 8902",
		},
		{
			Name:            "Linda Chen",
			Complaint:       "Severe headache, dizziness",
			RiskLevel:       RiskMedium,
			AppointmentType: TeleConsult,
			ScheduledTime:   "11:30 AM",
			Phone:           "+1 234 567 8903",
			Arrived:         true,
		},
		{
			Name:            "David Brown",
			Complaint:       "Routine blood pressure check",
			RiskLevel:       RiskLow,
			AppointmentType: InPerson,
			ScheduledTime:   "12:00 PM",
			Phone:           "+1 234 567 8904",
		},
	}
}
