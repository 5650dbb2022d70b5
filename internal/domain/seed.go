package domain

// SeedListings returns the bundled Mendoza directory used on first run, before
// any remote or cached data exists.
func SeedListings() []Listing {
	return []Listing{
		{
			ID:           "cap-1",
			Name:         "Estudio Contable Mendoza",
			Title:        "Asesoramiento Impositivo y Contable",
			Category:     CategoryBusiness,
			Rating:       4.8,
			ReviewCount:  120,
			Location:     "Av. España 1200, Ciudad",
			Department:   "Capital",
			Latitude:     Float64Ptr(-32.8908),
			Longitude:    Float64Ptr(-68.8458),
			Description:  "Liquidación de sueldos, monotributo y ganancias. Asesoramos a PyMEs y emprendedores.",
			PriceRange:   "$$$",
			ImageURL:     DefaultImage(CategoryBusiness),
			Tags:         []string{"Contador", "Impuestos", "Gestoría"},
			IsVerified:   true,
			IsPromoted:   true,
			Availability: "Lun-Vie 9-18hs",
			Email:        "info@estudiocm.com",
			WhatsApp:     "+5492615550101",
		},
		{
			ID:           "cap-2",
			Name:         "Centro Odontológico Sonrisas",
			Title:        "Ortodoncia y Estética Dental",
			Category:     CategoryHealth,
			Rating:       4.9,
			ReviewCount:  85,
			Location:     "Necochea 450, Ciudad",
			Department:   "Capital",
			Latitude:     Float64Ptr(-32.8950),
			Longitude:    Float64Ptr(-68.8400),
			Description:  "Especialistas en implantes y blanqueamiento. Atendemos obras sociales y particulares.",
			PriceRange:   "$$$",
			ImageURL:     DefaultImage(CategoryHealth),
			Tags:         []string{"Dentista", "Salud", "Urgencias"},
			IsVerified:   true,
			Availability: "Turnos Web",
			Email:        "turnos@sonrisas.com",
			WhatsApp:     "+5492615550102",
		},
		{
			ID:           "gc-1",
			Name:         "Mecánica Integral Godoy",
			Title:        "Service Oficial Multimarca",
			Category:     CategoryAutomotive,
			Rating:       4.7,
			ReviewCount:  210,
			Location:     "San Martín Sur 200, Godoy Cruz",
			Department:   "Godoy Cruz",
			Latitude:     Float64Ptr(-32.9252),
			Longitude:    Float64Ptr(-68.8444),
			Description:  "Diagnóstico computarizado, tren delantero y frenos. Garantía en todos los trabajos.",
			PriceRange:   "$$",
			ImageURL:     DefaultImage(CategoryAutomotive),
			Tags:         []string{"Mecánico", "Auto", "Taller"},
			IsVerified:   true,
			IsPromoted:   true,
			Availability: "Lun-Sab",
			Email:        "taller@godoymecanica.com",
			WhatsApp:     "+5492615550201",
		},
		{
			ID:           "gc-2",
			Name:         "FixIt Celulares",
			Title:        "Reparación de iPhone y Android",
			Category:     CategoryTechnology,
			Rating:       4.5,
			ReviewCount:  56,
			Location:     "Paso de los Andes 1000, Godoy Cruz",
			Department:   "Godoy Cruz",
			Latitude:     Float64Ptr(-32.9150),
			Longitude:    Float64Ptr(-68.8550),
			Description:  "Cambio de pantallas, baterías y reparación de placas en el acto.",
			PriceRange:   "$$",
			ImageURL:     DefaultImage(CategoryTechnology),
			Tags:         []string{"Celulares", "Servicio Técnico", "Apple"},
			Availability: "9:00 - 20:00",
			Email:        "contacto@fixit.com",
			WhatsApp:     "+5492615550202",
		},
		{
			ID:           "g-1",
			Name:         "Plomería El Cacique",
			Title:        "Gasista Matriculado y Plomero",
			Category:     CategoryHomeRepair,
			Rating:       4.9,
			ReviewCount:  300,
			Location:     "Dorrego, Guaymallén",
			Department:   "Guaymallén",
			Latitude:     Float64Ptr(-32.9069),
			Longitude:    Float64Ptr(-68.8025),
			Description:  "Destapes de cañerías con máquina, reparación de calefones y estufas. Urgencias 24hs.",
			PriceRange:   "$$",
			ImageURL:     DefaultImage(CategoryHomeRepair),
			Tags:         []string{"Plomero", "Gasista", "24hs"},
			IsVerified:   true,
			Availability: "24 horas",
			WhatsApp:     "+5492615550301",
		},
		{
			ID:           "g-2",
			Name:         "Profe Lucas Matemáticas",
			Title:        "Clases Particulares Primaria/Secundaria",
			Category:     CategoryEducation,
			Rating:       5.0,
			ReviewCount:  22,
			Location:     "Unimev, Guaymallén",
			Department:   "Guaymallén",
			Latitude:     Float64Ptr(-32.9000),
			Longitude:    Float64Ptr(-68.7900),
			Description:  "Preparo alumnos para ingresos universitarios y apoyo escolar. Presencial y Online.",
			PriceRange:   "$",
			ImageURL:     DefaultImage(CategoryEducation),
			Tags:         []string{"Clases", "Matemática", "Física"},
			Availability: "Por la tarde",
			Email:        "lucas@profesor.com",
			WhatsApp:     "+5492615550302",
		},
		{
			ID:           "lh-1",
			Name:         "Electricidad del Norte",
			Title:        "Instalaciones Eléctricas Domiciliarias",
			Category:     CategoryHomeRepair,
			Rating:       4.6,
			ReviewCount:  45,
			Location:     "San Miguel 1500, Las Heras",
			Department:   "Las Heras",
			Latitude:     Float64Ptr(-32.8465),
			Longitude:    Float64Ptr(-68.8687),
			Description:  "Cableados completos, colocación de luminarias y tableros. Presupuesto sin cargo.",
			PriceRange:   "$",
			ImageURL:     DefaultImage(CategoryHomeRepair),
			Tags:         []string{"Electricista", "Obras", "Luz"},
			IsVerified:   true,
			Availability: "Lunes a Sábado",
			WhatsApp:     "+5492615550401",
		},
		{
			ID:           "lh-2",
			Name:         "Gomería Los Andes",
			Title:        "Venta de Neumáticos y Alineación",
			Category:     CategoryAutomotive,
			Rating:       4.3,
			ReviewCount:  90,
			Location:     "Acceso Norte y Manuel A. Sáez",
			Department:   "Las Heras",
			Latitude:     Float64Ptr(-32.8300),
			Longitude:    Float64Ptr(-68.8500),
			Description:  "Reparación de llantas, balanceo y mecánica ligera.",
			PriceRange:   "$$",
			ImageURL:     DefaultImage(CategoryAutomotive),
			Tags:         []string{"Gomería", "Ruedas", "Auto"},
			IsVerified:   true,
			Availability: "Horario corrido",
			Email:        "ventas@gomerialosandes.com",
			WhatsApp:     "+5492615550402",
		},
		{
			ID:           "m-1",
			Name:         "Salón de Eventos Las Viñas",
			Title:        "Bodas, Cumpleaños y Corporativos",
			Category:     CategoryEvents,
			Rating:       4.8,
			ReviewCount:  150,
			Location:     "Maza 3000, Gutiérrez, Maipú",
			Department:   "Maipú",
			Latitude:     Float64Ptr(-32.9776),
			Longitude:    Float64Ptr(-68.7909),
			Description:  "Amplios jardines, catering propio y seguridad privada. Capacidad para 300 personas.",
			PriceRange:   "$$$$",
			ImageURL:     DefaultImage(CategoryEvents),
			Tags:         []string{"Salón", "Fiesta", "Catering"},
			IsVerified:   true,
			IsPromoted:   true,
			Availability: "Reservas abiertas",
			Email:        "eventos@lasvinas.com",
			WhatsApp:     "+5492615550501",
		},
		{
			ID:           "m-2",
			Name:         "Servicios de Jardinería Verde",
			Title:        "Mantenimiento de Espacios Verdes",
			Category:     CategoryHomeRepair,
			Rating:       4.5,
			ReviewCount:  30,
			Location:     "Luzuriaga, Maipú",
			Department:   "Maipú",
			Latitude:     Float64Ptr(-32.9500),
			Longitude:    Float64Ptr(-68.8100),
			Description:  "Poda, limpieza de piscinas y diseño de jardines. Abonos mensuales.",
			PriceRange:   "$$",
			ImageURL:     DefaultImage(CategoryHomeRepair),
			Tags:         []string{"Jardinero", "Piscina", "Paisajismo"},
			Availability: "Lun a Vie",
			WhatsApp:     "+5492615550502",
		},
		{
			ID:           "lc-1",
			Name:         "Kinesiología Chacras",
			Title:        "Rehabilitación y Pilates Terapéutico",
			Category:     CategoryHealth,
			Rating:       5.0,
			ReviewCount:  60,
			Location:     "Italia 560, Chacras de Coria",
			Department:   "Luján de Cuyo",
			Latitude:     Float64Ptr(-33.0060),
			Longitude:    Float64Ptr(-68.8785),
			Description:  "Atención personalizada por profesionales licenciados. Obras sociales y prepagas.",
			PriceRange:   "$$$",
			ImageURL:     DefaultImage(CategoryHealth),
			Tags:         []string{"Kinesiología", "Salud", "Pilates"},
			IsVerified:   true,
			Availability: "Con turno",
			Email:        "info@kinechacras.com",
			WhatsApp:     "+5492615550601",
		},
		{
			ID:           "lc-2",
			Name:         "DJ & Sonido Luján",
			Title:        "Música e Iluminación para Fiestas",
			Category:     CategoryEvents,
			Rating:       4.7,
			ReviewCount:  40,
			Location:     "Sáenz Peña, Luján de Cuyo",
			Department:   "Luján de Cuyo",
			Latitude:     Float64Ptr(-33.0350),
			Longitude:    Float64Ptr(-68.8800),
			Description:  "Equipos de última generación, pantallas LED y animación.",
			PriceRange:   "$$",
			ImageURL:     DefaultImage(CategoryEvents),
			Tags:         []string{"DJ", "Sonido", "Fiesta"},
			Availability: "Fines de semana",
			Email:        "dj@lujanparty.com",
			WhatsApp:     "+5492615550602",
		},
	}
}

// SeedAds returns the bundled advertisements shown before any have been
// published.
func SeedAds() []Advertisement {
	return []Advertisement{
		{
			ID:             "ad-sidebar-1",
			Title:          "¡Asegurá tu Herramienta!",
			AdvertiserName: "Seguros Cuyo",
			ImageURL:       "https://images.unsplash.com/photo-1450101499163-c8848c66ca85?auto=format&fit=crop&q=80&w=500",
			LinkURL:        "#",
			Position:       AdPositionSidebar,
		},
		{
			ID:             "ad-feed-1",
			Title:          "Materiales de Construcción al Mejor Precio",
			AdvertiserName: "Corralón El Constructor",
			ImageURL:       "https://images.unsplash.com/photo-1535732759880-bbd5c7265e3f?auto=format&fit=crop&q=80&w=500",
			LinkURL:        "#",
			Position:       AdPositionFeed,
		},
	}
}
