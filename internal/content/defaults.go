package content

// Built-in copy used whenever a key is absent or cannot be decoded.

func DefaultGeneralInfo() GeneralInfo {
	return GeneralInfo{
		SiteName:              "Psicologia & Bem-estar",
		Tagline:               "Atendimento psicológico presencial e online",
		SchedulingButtonColor: "",
		Gradient:              "pink-purple",
	}
}

func DefaultHero() HeroSection {
	return HeroSection{
		Badge:       "Psicologia clínica",
		Title:       "Cuidando da sua (saúde mental)",
		Subtitle:    "Um espaço seguro e acolhedor para você se conhecer melhor e viver com mais leveza.",
		ButtonText1: "Agendar consulta",
		ButtonText2: "Saiba mais",
	}
}

func DefaultAbout() AboutSection {
	return AboutSection{
		Badge:       "Sobre mim",
		Title:       "Olá, eu sou sua (psicóloga)",
		Subtitle:    "Psicologia baseada em evidências, com escuta e cuidado.",
		Description: "Atuo com psicoterapia para adolescentes e adultos, com foco em ansiedade, autoestima e relacionamentos.",
		Credentials: "Psicóloga clínica\nEspecialista em Terapia Cognitivo-Comportamental",
	}
}

func DefaultServicesHeading() SectionHeading {
	return SectionHeading{Badge: "Serviços", Title: "Como posso (ajudar)", Description: "Modalidades de atendimento pensadas para o seu momento."}
}

func DefaultTestimonialsHeading() SectionHeading {
	return SectionHeading{Badge: "Depoimentos", Title: "O que dizem os (pacientes)"}
}

func DefaultFAQHeading() SectionHeading {
	return SectionHeading{Badge: "Dúvidas", Title: "Perguntas (frequentes)"}
}

func DefaultGalleryHeading() SectionHeading {
	return SectionHeading{Badge: "Consultório", Title: "Conheça o (espaço)"}
}

func DefaultInspirational() InspirationalSection {
	return InspirationalSection{
		Quote:  "Quem olha para fora sonha; quem olha para dentro desperta.",
		Author: "Carl Jung",
	}
}

func DefaultContact() ContactSection {
	return ContactSection{
		Badge:       "Contato",
		Title:       "Vamos (conversar)?",
		Description: "Entre em contato para tirar dúvidas ou agendar sua primeira sessão.",
		Hours:       "Segunda a sexta, 8h às 20h",
	}
}
