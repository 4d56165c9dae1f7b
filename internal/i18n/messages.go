package i18n

var english = map[string]string{
	"back":        "Back",
	"save":        "Save",
	"pdf":         "PDF",
	"patientView": "Patient View",
	"finalize":    "Finalize",
	"patientPlan": "Treatment Plan",
	"admin":       "Admin & Settings",
	"langEnglish": "English",
	"langSpanish": "Español",

	"aiSuggestionTitle":    "Get an AI-Powered Suggestion",
	"aiSuggestionSubtitle": "Describe the patient's goals and let our AI create a starting plan for you.",
	"orStartFromTemplate":  "Or, Start from a Template",
	"analyzing":            "Analyzing...",
	"aiSuggestion":         "AI Suggestion",
	"selectTemplate":       "Select Template",
	"nextPhase":            "Next Phase",

	"docTitle":                "TREATMENT & CARE PLAN",
	"docPatientInformation":   "Patient Information",
	"docName":                 "Name",
	"docAge":                  "Age",
	"docSex":                  "Sex",
	"docDate":                 "Date",
	"docProvider":             "Provider",
	"docContraindications":    "General Contraindications & Allergies",
	"docNoContraindications":  "No significant contraindications, allergies, or relevant medical history reported.",
	"docVerifiedBy":           "Verified by provider on",
	"docPlanOverview":         "Plan Overview",
	"docOverviewIntro":        "Your personalized treatment journey is structured in the following phases to achieve the best results over time.",
	"docFollowUp":             "Follow-Up & Next Steps",
	"docFollowUpDescription":  "Schedule Follow-up Appointment",
	"docDetailsSubtitle":      "Treatment Details & Investment",
	"docTreatmentDetails":     "TREATMENT DETAILS",
	"docNoTreatments":         "No treatments scheduled for this phase.",
	"docInvestmentSummary":    "INVESTMENT SUMMARY",
	"docSubtotal":             "Subtotal",
	"docPlanDiscount":         "Plan Discount",
	"docTotalInvestment":      "Total Investment",
	"docFinancingOptions":     "FINANCING OPTIONS",
	"docFinancingIntro":       "We offer flexible financing to make your plan achievable.",
	"docHomeCareSubtitle":     "At-Home Care & Recommendations",
	"docHomeCare":             "Medications - Home Care & Important Notes",
	"docHomeCareRegimen":      "Home Care Regimen",
	"docNoHomeCare":           "No specific at-home products prescribed in this plan.",
	"docTreatmentContra":      "Treatment Contraindications & Allergies",
	"docRecommendations":      "GENERAL RECOMMENDATIONS",
	"docNextSteps":            "NEXT STEPS",
	"docPage":                 "Page",
	"docOf":                   "of",
	"docWeeks":                "Weeks",
	"docMonthsAt":             "months at",
	"docPerMonth":             "/mo",
	"docDosage":               "Dosage",
	"docMedications":          "Medications",
	"docAllergies":            "Allergies",
	"docMedicalHistory":       "Medical History",
	"docPreviousTreatments":   "Previous Treatments",
	"docTreatmentPlanned":     "treatment planned.",
	"docTreatmentsPlanned":    "treatments planned.",
}

var spanish = map[string]string{
	"back":        "Atrás",
	"save":        "Guardar",
	"pdf":         "PDF",
	"patientView": "Vista del Paciente",
	"finalize":    "Finalizar",
	"patientPlan": "Plan de Tratamiento",
	"admin":       "Administración y Ajustes",
	"langEnglish": "Inglés",
	"langSpanish": "Español",

	"aiSuggestionTitle":    "Obtenga una sugerencia de IA",
	"aiSuggestionSubtitle": "Describa los objetivos del paciente y deje que nuestra IA cree un plan inicial para usted.",
	"orStartFromTemplate":  "O, comience desde una plantilla",
	"analyzing":            "Analizando...",
	"aiSuggestion":         "Sugerencia de IA",
	"selectTemplate":       "Seleccionar plantilla",
	"nextPhase":            "Siguiente Fase",

	"docTitle":                "PLAN DE TRATAMIENTO Y CUIDADO",
	"docPatientInformation":   "Información del Paciente",
	"docName":                 "Nombre",
	"docAge":                  "Edad",
	"docSex":                  "Sexo",
	"docDate":                 "Fecha",
	"docProvider":             "Proveedor",
	"docContraindications":    "Contraindicaciones Generales y Alergias",
	"docNoContraindications":  "No se reportaron contraindicaciones, alergias ni historial médico relevante.",
	"docVerifiedBy":           "Verificado por el proveedor el",
	"docPlanOverview":         "Resumen del Plan",
	"docOverviewIntro":        "Su viaje de tratamiento personalizado está estructurado en las siguientes fases para lograr los mejores resultados con el tiempo.",
	"docFollowUp":             "Seguimiento y Próximos Pasos",
	"docFollowUpDescription":  "Agendar cita de seguimiento",
	"docDetailsSubtitle":      "Detalles del Tratamiento e Inversión",
	"docTreatmentDetails":     "DETALLES DEL TRATAMIENTO",
	"docNoTreatments":         "No hay tratamientos programados para esta fase.",
	"docInvestmentSummary":    "RESUMEN DE INVERSIÓN",
	"docSubtotal":             "Subtotal",
	"docPlanDiscount":         "Descuento del Plan",
	"docTotalInvestment":      "Inversión Total",
	"docFinancingOptions":     "OPCIONES DE FINANCIAMIENTO",
	"docFinancingIntro":       "Ofrecemos financiamiento flexible para hacer su plan alcanzable.",
	"docHomeCareSubtitle":     "Cuidado en Casa y Recomendaciones",
	"docHomeCare":             "Medicamentos - Cuidado en Casa y Notas Importantes",
	"docHomeCareRegimen":      "Rutina de Cuidado en Casa",
	"docNoHomeCare":           "No se recetaron productos específicos para el hogar en este plan.",
	"docTreatmentContra":      "Contraindicaciones del Tratamiento y Alergias",
	"docRecommendations":      "RECOMENDACIONES GENERALES",
	"docNextSteps":            "PRÓXIMOS PASOS",
	"docPage":                 "Página",
	"docOf":                   "de",
	"docWeeks":                "Semanas",
	"docMonthsAt":             "meses al",
	"docPerMonth":             "/mes",
	"docDosage":               "Dosis",
	"docMedications":          "Medicamentos",
	"docAllergies":            "Alergias",
	"docMedicalHistory":       "Historial Médico",
	"docPreviousTreatments":   "Tratamientos Previos",
	"docTreatmentPlanned":     "tratamiento planificado.",
	"docTreatmentsPlanned":    "tratamientos planificados.",
}
