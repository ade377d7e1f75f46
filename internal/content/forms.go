package content

// Field kinds understood by the admin form template.
const (
	FieldText     = "text"
	FieldTextarea = "textarea"
	FieldMarkdown = "markdown"
	FieldColor    = "color"
	FieldGradient = "gradient"
	FieldURL      = "url"
)

// Cache update strategies applied after a successful save.
const (
	StrategyInvalidate = "invalidate"
	StrategyOptimistic = "optimistic"
)

// FieldSpec describes one input of an admin form.
type FieldSpec struct {
	Name     string
	Label    string
	Kind     string
	Required bool
	Help     string
}

// FormSpec binds an admin form to the config key it owns.
type FormSpec struct {
	Key      string
	Title    string
	Strategy string
	Fields   []FieldSpec
}

var headingFields = []FieldSpec{
	{Name: "badge", Label: "Selo", Kind: FieldText},
	{Name: "title", Label: "Título", Kind: FieldText, Required: true, Help: "Use (palavra) para destacar com degradê."},
	{Name: "description", Label: "Descrição", Kind: FieldTextarea},
}

var forms = []FormSpec{
	{
		Key: KeyGeneralInfo, Title: "Informações gerais", Strategy: StrategyInvalidate,
		Fields: []FieldSpec{
			{Name: "siteName", Label: "Nome do site", Kind: FieldText, Required: true},
			{Name: "tagline", Label: "Slogan", Kind: FieldText},
			{Name: "crp", Label: "CRP", Kind: FieldText},
			{Name: "schedulingUrl", Label: "Link de agendamento", Kind: FieldURL},
			{Name: "schedulingButtonColor", Label: "Cor dos botões de agendamento", Kind: FieldColor},
			{Name: "gradient", Label: "Degradê padrão", Kind: FieldGradient},
		},
	},
	{
		Key: KeyHeroSection, Title: "Seção inicial", Strategy: StrategyOptimistic,
		Fields: []FieldSpec{
			{Name: "badge", Label: "Selo", Kind: FieldText},
			{Name: "title", Label: "Título", Kind: FieldText, Required: true, Help: "Use (palavra) para destacar com degradê."},
			{Name: "subtitle", Label: "Subtítulo", Kind: FieldTextarea, Required: true},
			{Name: "buttonText1", Label: "Texto do botão principal", Kind: FieldText},
			{Name: "buttonText2", Label: "Texto do botão secundário", Kind: FieldText},
			{Name: "gradient", Label: "Degradê", Kind: FieldGradient},
		},
	},
	{
		Key: KeyAboutSection, Title: "Sobre", Strategy: StrategyOptimistic,
		Fields: []FieldSpec{
			{Name: "badge", Label: "Selo", Kind: FieldText},
			{Name: "title", Label: "Título", Kind: FieldText, Required: true},
			{Name: "subtitle", Label: "Subtítulo", Kind: FieldText},
			{Name: "description", Label: "Texto", Kind: FieldMarkdown, Required: true, Help: "Aceita Markdown."},
			{Name: "imageUrl", Label: "URL da foto", Kind: FieldText},
			{Name: "credentials", Label: "Formação", Kind: FieldTextarea, Help: "Uma linha por item."},
		},
	},
	{Key: KeyServicesSection, Title: "Cabeçalho de serviços", Strategy: StrategyInvalidate, Fields: headingFields},
	{Key: KeyTestimonialsSection, Title: "Cabeçalho de depoimentos", Strategy: StrategyInvalidate, Fields: headingFields},
	{Key: KeyFAQSection, Title: "Cabeçalho de perguntas", Strategy: StrategyInvalidate, Fields: headingFields},
	{Key: KeyGallerySection, Title: "Cabeçalho da galeria", Strategy: StrategyInvalidate, Fields: headingFields},
	{
		Key: KeyInspirational, Title: "Frase inspiradora", Strategy: StrategyOptimistic,
		Fields: []FieldSpec{
			{Name: "quote", Label: "Frase", Kind: FieldTextarea, Required: true},
			{Name: "author", Label: "Autor", Kind: FieldText},
		},
	},
	{
		Key: KeyContactSection, Title: "Contato", Strategy: StrategyInvalidate,
		Fields: []FieldSpec{
			{Name: "badge", Label: "Selo", Kind: FieldText},
			{Name: "title", Label: "Título", Kind: FieldText, Required: true},
			{Name: "description", Label: "Descrição", Kind: FieldTextarea},
			{Name: "phone", Label: "Telefone", Kind: FieldText},
			{Name: "whatsapp", Label: "WhatsApp", Kind: FieldText},
			{Name: "email", Label: "E-mail", Kind: FieldText},
			{Name: "address", Label: "Endereço", Kind: FieldText},
			{Name: "hours", Label: "Horário de atendimento", Kind: FieldText},
		},
	},
}

// Forms lists every generic admin form in menu order.
func Forms() []FormSpec {
	out := make([]FormSpec, len(forms))
	copy(out, forms)
	return out
}

// FormFor returns the form that owns key.
func FormFor(key string) (FormSpec, bool) {
	for _, form := range forms {
		if form.Key == key {
			return form, true
		}
	}
	return FormSpec{}, false
}
