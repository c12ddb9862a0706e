package fab

// SeedTasks returns the demo board the dashboard starts with.
func SeedTasks() []Task {
	return []Task{
		{ID: "A-242", Title: "Servo Calibration sequence mismatch", Status: StatusBacklog, Priority: PriorityLow, Assignee: Unassigned, Progress: 0, Notes: "Standard calibration procedure failed at step 3. Suspect encoder drift."},
		{ID: "B-105", Title: "Hydraulic fluid pressure sensor error", Status: StatusBacklog, Priority: PriorityMed, Assignee: Unassigned, Progress: 0, Notes: "Sensor reading fluctuates wildly. Check wiring harness."},
		{ID: "C-882", Title: "Chassis reinforcement plating (Titanium)", Status: StatusFabrication, Priority: PriorityHigh, Assignee: "FAB-04", Progress: 2, Notes: "Material arrived. Plasma cutter configured for 12mm Ti-6Al-4V."},
		{ID: "A-201", Title: "Armature Assembly: Joint 3 & 4", Status: StatusAssembly, Priority: PriorityMed, Assignee: "K. OLSEN", AssigneeAvatar: avatarOlsen, Progress: 4, Notes: "Align primary servo motors with chassis mount points.\n> Verify torque settings before locking.\n> Ensure hydraulic lines are clear of rotation path."},
		{ID: "A-249", Title: "Logic Board Wiring Loom Install", Status: StatusAssembly, Priority: PriorityCrit, Assignee: "J.D.", Progress: 3, Notes: "Schematic ref: E-202-B. Ensure ground loops are minimized."},
		{ID: "F-002", Title: "Firmware Flash V4.0.1 (Beta)", Status: StatusDeployment, Priority: PriorityRdy, Assignee: "SYS", Progress: 5, Notes: "CRC check passed. Ready for deployment."},
	}
}

// SeedResources returns the operator roster.
func SeedResources() []Resource {
	return []Resource{
		{ID: "1", OperatorID: "OP-092", Name: "J. MAVERIC", Role: "SR. WELDER", MachineID: "KUKA-ARM-04", Status: ResourceBusy, Workload: [WorkloadDays]int{40, 60, 85, 90, 75, 50, 80}, Efficiency: 98, Avatar: avatarMaveric},
		{ID: "2", OperatorID: "OP-114", Name: "A. CHEN", Role: "QA LEAD", MachineID: "--", Status: ResourceIdle, Workload: [WorkloadDays]int{20, 10, 0, 0, 0, 30, 10}, Efficiency: 0, Avatar: avatarChen},
		{ID: "3", OperatorID: "OP-088", Name: "M. KOWALSKI", Role: "MACHINIST", MachineID: "HAAS-VF2-ERROR", Status: ResourceError, Workload: [WorkloadDays]int{90, 90, 0, 0, 0, 0, 0}, Efficiency: 0, Avatar: avatarKowalski},
		{ID: "4", OperatorID: "OP-102", Name: "S. CONNOR", Role: "SYS ADMIN", MachineID: "MAINFRAME-A", Status: ResourceBusy, Workload: [WorkloadDays]int{65, 70, 60, 80, 90, 85, 75}, Efficiency: 100, Avatar: avatarConnor},
		{ID: "5", OperatorID: "OP-145", Name: "D. VADER", Role: "ASSEMBLY", MachineID: "ARM-DELTA-3", Status: ResourceBusy, Workload: [WorkloadDays]int{40, 45, 30, 50, 60, 55, 65}, Efficiency: 92, Avatar: avatarVader},
		{ID: "6", OperatorID: "OP-210", Name: "K. REESE", Role: "TECH LEAD", MachineID: "UNIT-01", Status: ResourceBusy, Workload: [WorkloadDays]int{85, 90, 88, 92, 85, 70, 80}, Efficiency: 99, Avatar: avatarReese},
	}
}

// DefaultConfig returns the factory calibration settings.
func DefaultConfig() Config {
	return Config{
		HighContrast:     false,
		HapticFeedback:   true,
		RefreshRate:      60,
		MaxTorque:        4500,
		TempCeiling:      85.0,
		GridDensity:      8,
		CalibrationNotes: "Reviewed thermal limits on sector 7. Increased buffer by 5%.",
	}
}

const avatarBase = "https://lh3.googleusercontent.com/aida-public/"

var (
	avatarOlsen    = avatarBase + "AB6AXuCRRe6ew2klHdm4gB641Cisjijjp-56Rve6b_FeDWkN2ggnd7uDkhcrei0a7ix98sSFiCOFvqBNHBW_kagYSX1qvgEeTTKNbT1t6DoMdVLmImY6F8zam_ctShdC5UUIuVIX7dFG7JsO1FxdLzY77Hz3WkaOBJwjPIPuBctsLGHUiUapGMtnamckNDwEklfib1ti-HxeMltpGXeQHD2AdaPh6Pophs-XFhwcLADLz1ao9yNBzosqeuM4xfs38WLZU5gclglVyTbJfv7E"
	avatarMaveric  = avatarBase + "AB6AXuAmxlHU8US8FnNe-vnzbTcTjbKjTJWRhtThlvSlbic93BzhyUbtwbFucdmELZ31LXSSxRXF6ywmm5nsd7MUiJMurKGmGo_G94yrXhzKveh8j6YQJpgKM67OY0uMFAIip0wOdOHNaKm79AA6MHip7Fsjyfqd19H8UlUfm-eL_ot12WPysXODoSs_rnCM15RRFDgDA_6X_g7IMq2T9dA-_16-KELfiZKr5mzERGCxjepk863yQdpVcT-1eo0c2nXRkS8gQn27GTNykdsy"
	avatarChen     = avatarBase + "AB6AXuA_uejsKRJB-STQmxQO2GAQZRJxkdW23Z8nqEnjdqXYQVSVmFTxd21nIDbh1k24FJLHZypAOnVEYuMABsZ0J5fM7OMSGlnjBPjFoQOHdNY8JcFyTsz7O36sp_npvX-GeLbJ15EvkOb75UlyIje9y0fBp8WC8D57MhWQNfEo4t8Md8evj6pm_76JXvi_SgngZGDmqIMhCVH3X_51Mi79cBcpwfw6B9x4VcgWW8inT-Knunyxy3kg03DcbX2qtZPj-XuG2R8VYa2Bi-Rg"
	avatarKowalski = avatarBase + "AB6AXuDTLRq4aZ8nZv5qb1EcLGKb8OpwUa-QqOffLW8HoSvnCPOENlQleElzx4LXA40TH7gPFX2pUcnXHerC5gZnAIe5RN4NihdLrdmjFPaz_AfhiUswUaYyvnKvfRRp8dwm2JmAN9kW70nqEWf_5uHx4_E8ramEf5prwkeSLSwh_xjmUdPD_UTipXlPaERWU9OxTTd19uuFb0TjBHU74spW9G7uPEp0PEjWedFXj2MU4MEER9pbL6no2i9X0DTH_x6t2OWsZLj2kzSoTVom"
	avatarConnor   = avatarBase + "AB6AXuDH-KEswMBpnGc3wSXx6UdMSqar-BAtX_-fnueuD8xC1PRhvgAH_lhanbDb73-ZwtZnXrZjv1xduL3T5_jv1LBV8AQAJToBKZHUV1cVVGqoocosptJZ3PEFHDL9pWN4Igs-Icju65HPIQQDzv1eYBGPtiWiJ0o6T8qzfMo38NpraPwbXB82niNlzjCQgeEEIjViX9TsBmig07qapWnnjju5tnsenvoZbetPbMEuvxtWM-KqTD8vGxa3UVCtJl0FJtN9ygEoWMwj2W5r"
	avatarVader    = avatarBase + "AB6AXuBjtx0GDfYkUftL3mE8PTQjXUUfROA1ps28RyNW9rd0Lvv56Js1sZdlReNTLhZ1rZmEHti-nZfv1QHMmnXlHFqbV1tos89jXox04dQRLmFz3jt2IKJDHoI5el2Gxf9eL7IULBtXMx13_Hqk9UKyLfUZCyw9R3Z64-XlFrWctXhLQCwrrg2xLNsNgYywLs0-4N3elG2OFbhKgOblXKyeds0q-pESj7peXOxCk2fXsQA_SNT60YV2CLyTi2XNH01Ctyemdy7bbto3ZN1l"
	avatarReese    = avatarBase + "AB6AXuCpiiPO_HsFqHN8lEaczNUf5LEHVPO-wW04VjMaFcYqf71T3n2N6ZQ_wBBD_E0KudzYi44wkwaFxfoz5jqPpRk_gCqZReE2QBVNo0f31r6ZrhplEJ03mcTvfpGhURz1JM0ElE9ZAaX7rXmUxpjhHxEnvBY2JQMrPgqWAO2A-POgQGvfP77ScFavOjc0H83SNQ2HBwqVYcBbYcWSr5EIudmx3xgNiq_chnVZi9bYDY_soNXVR7UZu5gvXropHo2MjVq2jHSAqXxHfuJ-"
)
