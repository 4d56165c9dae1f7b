package entities

func floatPtr(v float64) *float64 { return &v }

func localizedPtr(en, es string) *LocalizedString {
	return &LocalizedString{EN: en, ES: es}
}

var defaultPracticeInfo = PracticeInfo{
	Name:     "Aesthetics 360 Medical Center",
	Address:  "123 Wellness Boulevard, Beverly Hills, CA 90210",
	Phone:    "(555) 123-4567",
	Email:    "info@aesthetics360.com",
	Website:  "www.aesthetics360.com",
	LogoURL:  "https://ik.imagekit.io/0fheaxmfc/Main%20Logo.png?updatedAt=1754492000386",
	Provider: "Dr. Sarah Martinez, MD",
}

var defaultAMRoutine = []string{
	"Gentle Cleanser",
	"Vitamin C Serum",
	"Moisturizer",
	"Broad-Spectrum SPF 50+",
}

var defaultPMRoutine = []string{
	"Gentle Cleanser",
	"Retinoid (as prescribed)",
	"Hyaluronic Acid Serum",
	"Night Cream",
}

const defaultSkincareInstructions = "Follow the routine consistently. Introduce Retinoid slowly, starting 2-3 times per week and increasing as tolerated. Always wear sunscreen during the day, reapplying every 2 hours when exposed to direct sun."

var defaultRecommendations = []Recommendation{
	{Text: "Sun Protection: Wear SPF 50+ daily, even on cloudy days.", Checked: true},
	{Text: "Hydration: Drink at least 8 glasses of water per day.", Checked: true},
	{Text: "Diet: Maintain a balanced diet rich in antioxidants.", Checked: false},
	{Text: "Lifestyle: Avoid smoking and limit alcohol consumption.", Checked: true},
}

var defaultFinancing = []FinancingOption{
	{Months: 6, APR: 0},
	{Months: 12, APR: 7.99},
	{Months: 24, APR: 9.99},
}

// DefaultFinancingOptions returns a copy of the stock financing terms
// used when a plan is built without a template.
func DefaultFinancingOptions() []FinancingOption {
	options := make([]FinancingOption, len(defaultFinancing))
	copy(options, defaultFinancing)
	return options
}

var defaultNextSteps = []string{
	"Schedule your first treatment appointment via the patient portal or by calling our office.",
	"Purchase recommended at-home skincare products from our clinic or website.",
	"Book a follow-up consultation in 3 months to assess progress.",
}

const botulinumContraindicationsEN = "Known allergy to botulinum toxin products, infection at injection site, pregnancy/breastfeeding, neuromuscular disorders (e.g., ALS, Myasthenia Gravis)."
const botulinumContraindicationsES = "Alergia conocida a productos de toxina botulínica, infección en el sitio de inyección, embarazo/lactancia, trastornos neuromusculares (p. ej., ELA, Miastenia Gravis)."

const fillerContraindicationsEN = "History of severe allergies (anaphylaxis), lidocaine allergy, bleeding disorders, active skin inflammation or infection at the site."
const fillerContraindicationsES = "Historial de alergias graves (anafilaxia), alergia a la lidocaína, trastornos hemorrágicos, inflamación o infección activa de la piel en el sitio."

const laserContraindicationsEN = "Active infections, viral/fungal/bacterial diseases, inflammatory skin conditions, skin cancer. Use of photosensitizing medication (e.g., Accutane) in the last 6 months."
const laserContraindicationsES = "Infecciones activas, enfermedades virales/fúngicas/bacterianas, afecciones inflamatorias de la piel, cáncer de piel. Uso de medicamentos fotosensibilizantes (p. ej., Accutane) en los últimos 6 meses."

// DefaultCatalog returns a deep copy of the built-in catalog. Saved
// tenant catalogs are deep-merged over this document on load, so new
// default fields survive older saved data.
func DefaultCatalog() *CatalogDefinition {
	return defaultCatalog.Clone()
}

var defaultCatalog = CatalogDefinition{
	PracticeInfo: defaultPracticeInfo,
	Categories: map[string]Category{
		"consultations": {
			DisplayName: LocalizedString{EN: "Consultations", ES: "Consultas"},
			ItemLabel:   LocalizedString{EN: "Consultation Type", ES: "Tipo de Consulta"},
			Items: []TreatmentDefinitionItem{
				{
					Key:    "comprehensive-skin-analysis",
					Name:   LocalizedString{EN: "Comprehensive Skin Analysis", ES: "Análisis Integral de la Piel"},
					Fields: []DynamicField{FieldTechnology},
					Defaults: ItemDefaults{
						Icon:      "Facial",
						Goal:      LocalizedString{EN: "Establish baseline and create treatment plan.", ES: "Establecer línea de base y crear plan de tratamiento."},
						Price:     0,
						Frequency: "once",
					},
				},
				{
					Key:    "follow-up-consultation",
					Name:   LocalizedString{EN: "Follow-up Consultation", ES: "Consulta de Seguimiento"},
					Fields: []DynamicField{},
					Defaults: ItemDefaults{
						Icon:      "Clock",
						Goal:      LocalizedString{EN: "Assess progress and adjust plan.", ES: "Evaluar el progreso y ajustar el plan."},
						Price:     100,
						Frequency: "as-needed",
					},
				},
			},
		},
		"injectables": {
			DisplayName: LocalizedString{EN: "Injectables", ES: "Inyectables"},
			ItemLabel:   LocalizedString{EN: "Product", ES: "Producto"},
			Items: []TreatmentDefinitionItem{
				{
					Key:    "botox",
					Name:   LocalizedString{EN: "Botox", ES: "Bótox"},
					Fields: []DynamicField{FieldTargetArea, FieldUnits},
					Defaults: ItemDefaults{
						Icon:              "Syringe",
						Goal:              LocalizedString{EN: "Reduce dynamic wrinkles.", ES: "Reducir arrugas dinámicas."},
						PricePerUnit:      floatPtr(13),
						Units:             "50",
						Price:             650,
						Frequency:         "every-3-4-months",
						Contraindications: localizedPtr(botulinumContraindicationsEN, botulinumContraindicationsES),
						SKU:               "INJ-BTX-50U",
						Cost:              250,
						ImageURL:          "https://ik.imagekit.io/0fheaxmfc/Product%20Shots/vials.png?updatedAt=1754507025888",
						Brand:             "Allergan",
					},
				},
				{
					Key:    "dysport",
					Name:   LocalizedString{EN: "Dysport", ES: "Dysport"},
					Fields: []DynamicField{FieldTargetArea, FieldUnits},
					Defaults: ItemDefaults{
						Icon:              "Syringe",
						Goal:              LocalizedString{EN: "Reduce dynamic wrinkles.", ES: "Reducir arrugas dinámicas."},
						PricePerUnit:      floatPtr(12),
						Units:             "50",
						Price:             600,
						Frequency:         "every-3-4-months",
						Contraindications: localizedPtr(botulinumContraindicationsEN, botulinumContraindicationsES),
						Brand:             "Galderma",
					},
				},
				{
					Key:    "juvederm-voluma",
					Name:   LocalizedString{EN: "Juvederm Voluma", ES: "Juvederm Voluma"},
					Fields: []DynamicField{FieldTargetArea, FieldVolume},
					Defaults: ItemDefaults{
						Icon:              "Syringe",
						Goal:              LocalizedString{EN: "Add volume to cheeks.", ES: "Añadir volumen a las mejillas."},
						PricePerUnit:      floatPtr(850),
						Volume:            "1",
						Price:             850,
						Frequency:         "once",
						Contraindications: localizedPtr(fillerContraindicationsEN, fillerContraindicationsES),
						SKU:               "INJ-JV-VOL-1ML",
						Cost:              380,
						ImageURL:          "https://ik.imagekit.io/0fheaxmfc/Product%20Shots/syringes.png?updatedAt=1754507025894",
						Brand:             "Allergan",
					},
				},
				{
					Key:    "restylane",
					Name:   LocalizedString{EN: "Restylane", ES: "Restylane"},
					Fields: []DynamicField{FieldTargetArea, FieldVolume},
					Defaults: ItemDefaults{
						Icon:              "Syringe",
						Goal:              LocalizedString{EN: "Correct wrinkles and folds.", ES: "Corregir arrugas y pliegues."},
						PricePerUnit:      floatPtr(700),
						Volume:            "1",
						Price:             700,
						Frequency:         "once",
						Contraindications: localizedPtr(fillerContraindicationsEN, fillerContraindicationsES),
						Brand:             "Galderma",
					},
				},
				{
					Key:    "kybella",
					Name:   LocalizedString{EN: "Kybella", ES: "Kybella"},
					Fields: []DynamicField{FieldTargetArea, FieldVials},
					Defaults: ItemDefaults{
						Icon:         "Vial",
						Goal:         LocalizedString{EN: "Reduce submental fat.", ES: "Reducir la grasa submentoniana."},
						PricePerUnit: floatPtr(600),
						Vials:        "2",
						Price:        1200,
						Frequency:    "series-of-treatments",
						Contraindications: localizedPtr(
							"Infection in the treatment area, trouble swallowing, bleeding problems. Use caution if you have had prior cosmetic treatments on the neck/chin.",
							"Infección en el área de tratamiento, dificultad para tragar, problemas de sangrado. Tenga precaución si ha tenido tratamientos cosméticos previos en el cuello/barbilla.",
						),
						Brand: "Allergan",
					},
				},
			},
		},
		"laser-light-therapy": {
			DisplayName: LocalizedString{EN: "Laser & Light Therapy", ES: "Terapia Láser y de Luz"},
			ItemLabel:   LocalizedString{EN: "Treatment", ES: "Tratamiento"},
			Items: []TreatmentDefinitionItem{
				{
					Key:    "bbl",
					Name:   LocalizedString{EN: "BBL (BroadBand Light)", ES: "BBL (Luz de Banda Ancha)"},
					Fields: []DynamicField{FieldTargetArea, FieldIntensity},
					Defaults: ItemDefaults{
						Icon:              "Facial",
						Goal:              LocalizedString{EN: "Correct sun damage and pigmentation.", ES: "Corregir daño solar y pigmentación."},
						Price:             500,
						Frequency:         "series-of-3-5",
						Contraindications: localizedPtr(laserContraindicationsEN, laserContraindicationsES),
					},
				},
				{
					Key:    "moxi",
					Name:   LocalizedString{EN: "Moxi", ES: "Moxi"},
					Fields: []DynamicField{FieldTargetArea, FieldIntensity},
					Defaults: ItemDefaults{
						Icon:              "Facial",
						Goal:              LocalizedString{EN: "Improve skin tone and texture.", ES: "Mejorar el tono y la textura de la piel."},
						Price:             600,
						Frequency:         "series-of-3-4",
						Contraindications: localizedPtr(laserContraindicationsEN, laserContraindicationsES),
					},
				},
			},
		},
		"facials-peels": {
			DisplayName: LocalizedString{EN: "Facials & Peels", ES: "Faciales y Exfoliaciones"},
			ItemLabel:   LocalizedString{EN: "Treatment", ES: "Tratamiento"},
			Items: []TreatmentDefinitionItem{
				{
					Key:    "hydrafacial-md",
					Name:   LocalizedString{EN: "HydraFacial MD", ES: "HydraFacial MD"},
					Fields: []DynamicField{FieldIntensity},
					Defaults: ItemDefaults{
						Icon:      "Facial",
						Goal:      LocalizedString{EN: "Hydrate, cleanse, and exfoliate.", ES: "Hidratar, limpiar y exfoliar."},
						Price:     250,
						Frequency: "monthly",
						SKU:       "FCL-HYD-MD",
						Cost:      80,
						ImageURL:  "https://ik.imagekit.io/0fheaxmfc/Product%20Shots/facial-cream.png?updatedAt=1754507025983",
						Brand:     "HydraFacial",
					},
				},
				{
					Key:    "microneedling",
					Name:   LocalizedString{EN: "Microneedling", ES: "Microneedling"},
					Fields: []DynamicField{FieldTargetArea},
					Defaults: ItemDefaults{
						Icon:      "Syringe",
						Goal:      LocalizedString{EN: "Stimulate collagen for texture improvement.", ES: "Estimular el colágeno para mejorar la textura."},
						Price:     400,
						Frequency: "series-of-3-6",
						Contraindications: localizedPtr(
							"Active acne, skin infection, keloid scarring tendency, Accutane use in last 6 months, uncontrolled diabetes.",
							"Acné activo, infección de la piel, tendencia a la cicatrización queloide, uso de Accutane en los últimos 6 meses, diabetes no controlada.",
						),
					},
				},
			},
		},
		HomeCareCategoryKey: {
			DisplayName: LocalizedString{EN: "Skincare & Medications", ES: "Cuidado de la Piel y Medicamentos"},
			ItemLabel:   LocalizedString{EN: "Product", ES: "Producto"},
			Items: []TreatmentDefinitionItem{
				{
					Key:    "medical-grade-vitamin-c-serum",
					Name:   LocalizedString{EN: "Medical-Grade Vitamin C Serum", ES: "Sérum de Vitamina C de Grado Médico"},
					Fields: []DynamicField{FieldDosage, FieldApplication},
					Defaults: ItemDefaults{
						Icon:        "Package",
						Goal:        LocalizedString{EN: "Antioxidant protection and brightening.", ES: "Protección antioxidante e iluminación."},
						Price:       120,
						Frequency:   "daily",
						Application: "am",
						Dosage:      "3-4 drops",
					},
				},
				{
					Key:    "tretinoin-cream-0.025",
					Name:   LocalizedString{EN: "Tretinoin Cream 0.025%", ES: "Crema de Tretinoína 0.025%"},
					Fields: []DynamicField{FieldDosage, FieldApplication},
					Defaults: ItemDefaults{
						Icon:        "Package",
						Goal:        LocalizedString{EN: "Accelerate cell turnover, treat acne and fine lines.", ES: "Acelerar la renovación celular, tratar el acné y las líneas finas."},
						Price:       85,
						Frequency:   "daily",
						Application: "pm",
						Dosage:      "Pea-sized amount",
						Contraindications: localizedPtr(
							"Pregnancy or planning pregnancy, eczema in treatment area, sunburn.",
							"Embarazo o planificación de embarazo, eccema en el área de tratamiento, quemadura solar.",
						),
					},
				},
				{
					Key:    "hyaluronic-acid-serum",
					Name:   LocalizedString{EN: "Hyaluronic Acid Serum", ES: "Sérum de Ácido Hialurónico"},
					Fields: []DynamicField{FieldDosage, FieldApplication},
					Defaults: ItemDefaults{
						Icon:        "Package",
						Goal:        LocalizedString{EN: "Deep hydration and plumping.", ES: "Hidratación profunda y efecto relleno."},
						Price:       95,
						Frequency:   "daily",
						Application: "both",
						Dosage:      "3-4 drops",
					},
				},
				{
					Key:    "broad-spectrum-spf-50",
					Name:   LocalizedString{EN: "Broad-Spectrum SPF 50", ES: "Protector Solar de Amplio Espectro SPF 50"},
					Fields: []DynamicField{FieldDosage, FieldApplication},
					Defaults: ItemDefaults{
						Icon:        "Sun",
						Goal:        LocalizedString{EN: "Daily protection against UVA/UVB damage.", ES: "Protección diaria contra el daño UVA/UVB."},
						Price:       45,
						Frequency:   "daily",
						Application: "am",
						Dosage:      "Apply liberally",
					},
				},
				{
					Key:    "latisse",
					Name:   LocalizedString{EN: "Latisse", ES: "Latisse"},
					Fields: []DynamicField{FieldDosage, FieldApplication},
					Defaults: ItemDefaults{
						Icon:        "Package",
						Goal:        LocalizedString{EN: "Grow longer, fuller lashes.", ES: "Conseguir pestañas más largas y pobladas."},
						Price:       140,
						Frequency:   "daily",
						Application: "pm",
						Dosage:      "One drop per lid",
						Brand:       "Allergan",
					},
				},
			},
		},
		"neocutis-skincare": {
			DisplayName: LocalizedString{EN: "Neocutis Skincare", ES: "Cuidado de la Piel Neocutis"},
			ItemLabel:   LocalizedString{EN: "Product", ES: "Producto"},
			Items: []TreatmentDefinitionItem{
				{
					Key:    "bio-cream-firm-50",
					Name:   LocalizedString{EN: "Bio Cream Firm 50ml", ES: "Bio Cream Firm 50ml"},
					Fields: []DynamicField{FieldDosage, FieldApplication},
					Defaults: ItemDefaults{
						Icon:        "Package",
						Goal:        LocalizedString{EN: "Anti-aging cream for skin firmness.", ES: "Crema antiedad para la firmeza de la piel."},
						Price:       160,
						Frequency:   "daily",
						Application: "pm",
						Dosage:      "Apply as directed",
						Brand:       "Neocutis",
					},
				},
				{
					Key:    "bio-serum-firm",
					Name:   LocalizedString{EN: "Bio Serum Firm", ES: "Bio Serum Firm"},
					Fields: []DynamicField{FieldDosage, FieldApplication},
					Defaults: ItemDefaults{
						Icon:        "Package",
						Goal:        LocalizedString{EN: "Potent rejuvenating serum.", ES: "Sérum rejuvenecedor potente."},
						Price:       275,
						Frequency:   "daily",
						Application: "both",
						Dosage:      "Apply as directed",
						Brand:       "Neocutis",
					},
				},
				{
					Key:    "journee-firm-50",
					Name:   LocalizedString{EN: "Journee Firm 50ml", ES: "Journee Firm 50ml"},
					Fields: []DynamicField{FieldDosage, FieldApplication},
					Defaults: ItemDefaults{
						Icon:        "Sun",
						Goal:        LocalizedString{EN: "Day cream with SPF protection.", ES: "Crema de día con protección SPF."},
						Price:       165,
						Frequency:   "daily",
						Application: "am",
						Dosage:      "Apply as directed",
						Brand:       "Neocutis",
					},
				},
			},
		},
		"vein-treatments": {
			DisplayName: LocalizedString{EN: "Vein Treatments", ES: "Tratamientos de Venas"},
			ItemLabel:   LocalizedString{EN: "Treatment", ES: "Tratamiento"},
			Items: []TreatmentDefinitionItem{
				{
					Key:    "sclerotherapy",
					Name:   LocalizedString{EN: "Sclerotherapy", ES: "Escleroterapia"},
					Fields: []DynamicField{FieldTargetArea, FieldVials},
					Defaults: ItemDefaults{
						Icon:         "Vial",
						Goal:         LocalizedString{EN: "Treat spider and small varicose veins.", ES: "Tratar arañas vasculares y pequeñas varices."},
						PricePerUnit: floatPtr(400),
						Vials:        "1",
						Price:        400,
						Frequency:    "series-of-treatments",
						Contraindications: localizedPtr(
							"Pregnancy, history of deep vein thrombosis (DVT) or blood clots, allergy to sclerosant solution, infection at injection site.",
							"Embarazo, historial de trombosis venosa profunda (TVP) o coágulos de sangre, alergia a la solución esclerosante, infección en el sitio de inyección.",
						),
					},
				},
			},
		},
		"utility-agents": {
			DisplayName: LocalizedString{EN: "Utility Agents", ES: "Agentes de Utilidad"},
			ItemLabel:   LocalizedString{EN: "Product", ES: "Producto"},
			Items: []TreatmentDefinitionItem{
				{
					Key:    "hylenex",
					Name:   LocalizedString{EN: "Hylenex", ES: "Hylenex"},
					Fields: []DynamicField{FieldVials},
					Defaults: ItemDefaults{
						Icon:         "Vial",
						Goal:         LocalizedString{EN: "Dissolve hyaluronic acid fillers.", ES: "Disolver rellenos de ácido hialurónico."},
						PricePerUnit: floatPtr(200),
						Vials:        "1",
						Price:        200,
						Frequency:    "as-needed",
						Contraindications: localizedPtr(
							"Allergy to hyaluronidase products. Infection at the injection site.",
							"Alergia a productos de hialuronidasa. Infección en el sitio de inyección.",
						),
						Brand: "Halozyme",
					},
				},
			},
		},
	},
	Options: map[string][]OptionDefinition{
		OptionGroupTechnologies: {
			{Value: "visia", Label: LocalizedString{EN: "VISIA", ES: "VISIA"}},
			{Value: "canfield", Label: LocalizedString{EN: "Canfield IntelliCAM", ES: "Canfield IntelliCAM"}},
			{Value: "other", Label: LocalizedString{EN: "Other", ES: "Otro"}},
		},
		OptionGroupTimelines: {
			{Value: "week-1", Label: LocalizedString{EN: "Week 1", ES: "Semana 1"}},
			{Value: "week-2", Label: LocalizedString{EN: "Week 2", ES: "Semana 2"}},
			{Value: "month-3", Label: LocalizedString{EN: "Month 3", ES: "Mes 3"}},
			{Value: "ongoing", Label: LocalizedString{EN: "Ongoing", ES: "Continuo"}},
			{Value: "tbd", Label: LocalizedString{EN: "TBD", ES: "Por determinar"}},
		},
		OptionGroupFrequencies: {
			{Value: "once", Label: LocalizedString{EN: "Once", ES: "Una vez"}},
			{Value: "daily", Label: LocalizedString{EN: "Daily", ES: "Diario"}},
			{Value: "monthly", Label: LocalizedString{EN: "Monthly", ES: "Mensual"}},
			{Value: "every-3-4-months", Label: LocalizedString{EN: "Every 3-4 months", ES: "Cada 3-4 meses"}},
			{Value: "as-needed", Label: LocalizedString{EN: "As needed", ES: "Según sea necesario"}},
			{Value: "series-of-3", Label: LocalizedString{EN: "Series of 3", ES: "Serie de 3"}},
			{Value: "series-of-3-4", Label: LocalizedString{EN: "Series of 3-4", ES: "Serie de 3-4"}},
			{Value: "series-of-3-5", Label: LocalizedString{EN: "Series of 3-5", ES: "Serie de 3-5"}},
			{Value: "series-of-3-6", Label: LocalizedString{EN: "Series of 3-6", ES: "Serie de 3-6"}},
			{Value: "series-of-treatments", Label: LocalizedString{EN: "Series of treatments", ES: "Serie de tratamientos"}},
		},
		OptionGroupTargetAreas: {
			{Value: "forehead", Label: LocalizedString{EN: "Forehead", ES: "Frente"}},
			{Value: "crows-feet", Label: LocalizedString{EN: "Crow's Feet", ES: "Patas de Gallo"}},
			{Value: "cheeks", Label: LocalizedString{EN: "Cheeks", ES: "Mejillas"}},
			{Value: "lips-volume", Label: LocalizedString{EN: "Lips (Volume)", ES: "Labios (Volumen)"}},
			{Value: "full-face", Label: LocalizedString{EN: "Full Face", ES: "Rostro Completo"}},
			{Value: "legs", Label: LocalizedString{EN: "Legs", ES: "Piernas"}},
		},
		OptionGroupIntensities: {
			{Value: "light", Label: LocalizedString{EN: "Light", ES: "Ligero"}},
			{Value: "medium", Label: LocalizedString{EN: "Medium", ES: "Medio"}},
			{Value: "strong", Label: LocalizedString{EN: "Strong", ES: "Fuerte"}},
		},
		OptionGroupApplications: {
			{Value: "am", Label: LocalizedString{EN: "AM", ES: "AM"}},
			{Value: "pm", Label: LocalizedString{EN: "PM", ES: "PM"}},
			{Value: "both", Label: LocalizedString{EN: "Both", ES: "Ambos"}},
		},
		OptionGroupTemplateCategories: {
			{Value: "anti-aging", Label: LocalizedString{EN: "Anti-Aging", ES: "Antienvejecimiento"}},
			{Value: "acne", Label: LocalizedString{EN: "Acne", ES: "Acné"}},
			{Value: "laser", Label: LocalizedString{EN: "Laser", ES: "Láser"}},
			{Value: "injectables", Label: LocalizedString{EN: "Injectables", ES: "Inyectables"}},
			{Value: "generic-aesthetics", Label: LocalizedString{EN: "Generic Aesthetics", ES: "Estética General"}},
			{Value: "veins", Label: LocalizedString{EN: "Veins", ES: "Venas"}},
		},
		OptionGroupPhaseTitles: {
			{Value: "foundation", Label: LocalizedString{EN: "Foundation", ES: "Base"}},
			{Value: "correction", Label: LocalizedString{EN: "Correction", ES: "Corrección"}},
			{Value: "enhancement", Label: LocalizedString{EN: "Enhancement", ES: "Mejora"}},
			{Value: "maintenance", Label: LocalizedString{EN: "Maintenance", ES: "Mantenimiento"}},
			{Value: "finishing", Label: LocalizedString{EN: "Finishing Touches", ES: "Toques Finales"}},
		},
	},
	PlanTemplates: []PlanTemplate{
		{
			ID:          "anti-aging-foundation",
			CategoryKey: "anti-aging",
			Title:       LocalizedString{EN: "Anti-Aging Foundation Plan", ES: "Plan Fundamental Antienvejecimiento"},
			Notes:       LocalizedString{EN: "A great starting point for clients new to aesthetic treatments, focusing on prevention and subtle enhancements.", ES: "Un excelente punto de partida para clientes nuevos en tratamientos estéticos, centrado en la prevención y mejoras sutiles."},
			Phases: []TemplatePhase{
				{
					ID:    "phase-1-anti-aging",
					Title: "Initial Assessment & Foundation Treatments",
					Treatments: []TemplateTreatment{
						{
							ID:              "treat-1-aa",
							Week:            "week-1",
							CategoryKey:     "consultations",
							TreatmentKey:    "comprehensive-skin-analysis",
							Goal:            "Establish baseline and goals.",
							Frequency:       "once",
							Price:           0,
							Icon:            "Facial",
							KeyInstructions: "Arrive with a clean face, no makeup.",
							Technology:      "visia",
						},
						{
							ID:              "treat-2-aa",
							Week:            "week-2",
							CategoryKey:     "injectables",
							TreatmentKey:    "botox",
							Goal:            "Reduce dynamic wrinkles in forehead and crows feet.",
							Frequency:       "once",
							Price:           650,
							PricePerUnit:    floatPtr(13),
							Units:           "50",
							Icon:            "Syringe",
							KeyInstructions: "Avoid sun exposure 48h before and after.",
							TargetArea:      []string{"forehead", "crows-feet"},
						},
					},
					ControlsAndMetrics: []string{
						"Monitor skin reaction and healing",
						"Document progress with photos",
						"Adjust treatment intensity as needed",
					},
				},
				{
					ID:    "phase-2-anti-aging",
					Title: "Maintenance (Quarterly)",
					Treatments: []TemplateTreatment{
						{
							ID:              "treat-3-aa",
							Week:            "ongoing",
							CategoryKey:     "injectables",
							TreatmentKey:    "botox",
							Goal:            "Maintains wrinkle reduction effects.",
							Frequency:       "every-3-4-months",
							Price:           650,
							PricePerUnit:    floatPtr(13),
							Units:           "50",
							Icon:            "Syringe",
							KeyInstructions: "Schedule follow-up appointments proactively.",
							TargetArea:      []string{"forehead", "crows-feet"},
						},
					},
					ControlsAndMetrics: []string{
						"Assess effectiveness of previous treatment",
						"Adjust dosage if necessary",
					},
				},
			},
			AMRoutine:              defaultAMRoutine,
			PMRoutine:              defaultPMRoutine,
			SkincareInstructions:   defaultSkincareInstructions,
			GeneralRecommendations: defaultRecommendations,
			Investment:             Investment{DiscountPercent: 0, FinancingOptions: defaultFinancing},
			NextSteps:              defaultNextSteps,
		},
		{
			ID:          "rejuvenation-program",
			CategoryKey: "laser",
			Title:       LocalizedString{EN: "Laser Rejuvenation Program", ES: "Programa de Rejuvenecimiento Láser"},
			Notes:       LocalizedString{EN: "This plan is designed to significantly improve skin quality over a structured period, with a built-in maintenance plan.", ES: "Este plan está diseñado para mejorar significativamente la calidad de la piel durante un período estructurado, con un plan de mantenimiento incorporado."},
			Phases: []TemplatePhase{
				{
					ID:    "phase-1-rejuv",
					Title: "Intensive Correction (3 Months)",
					Treatments: []TemplateTreatment{
						{
							ID:              "treat-1-rejuv",
							Week:            "week-1",
							CategoryKey:     "laser-light-therapy",
							TreatmentKey:    "bbl",
							Goal:            "Corrects sun damage and pigmentation.",
							Frequency:       "series-of-3-5",
							Price:           500,
							Icon:            "Facial",
							KeyInstructions: "Strictly avoid sun exposure post-treatment.",
							TargetArea:      []string{"full-face"},
						},
						{
							ID:              "treat-2-rejuv",
							Week:            "month-3",
							CategoryKey:     "laser-light-therapy",
							TreatmentKey:    "moxi",
							Goal:            "Improves skin tone and texture.",
							Frequency:       "series-of-3-4",
							Price:           600,
							Icon:            "Facial",
							KeyInstructions: "Use provided post-care kit.",
							TargetArea:      []string{"full-face"},
						},
					},
					ControlsAndMetrics: []string{
						"Track reduction in pigmentation",
						"Monitor skin texture improvement",
						"Ensure proper sun protection is used daily",
					},
				},
			},
			AMRoutine:              defaultAMRoutine,
			PMRoutine:              defaultPMRoutine,
			SkincareInstructions:   defaultSkincareInstructions,
			GeneralRecommendations: defaultRecommendations,
			Investment:             Investment{DiscountPercent: 10, FinancingOptions: defaultFinancing},
			NextSteps:              defaultNextSteps,
		},
		{
			ID:    "blank-plan",
			Title: LocalizedString{EN: "Blank Treatment Plan", ES: "Plan de Tratamiento en Blanco"},
			Notes: LocalizedString{},
			Phases: []TemplatePhase{
				{
					ID:         "phase-1-blank",
					Title:      "Phase 1",
					Treatments: []TemplateTreatment{},
				},
			},
			AMRoutine:              defaultAMRoutine,
			PMRoutine:              defaultPMRoutine,
			SkincareInstructions:   defaultSkincareInstructions,
			GeneralRecommendations: defaultRecommendations,
			Investment:             Investment{DiscountPercent: 0, FinancingOptions: defaultFinancing},
			NextSteps:              defaultNextSteps,
		},
	},
}
