// internal/content/schema.go
//
// Editable-element schema.
//
// Components() and ProductComponents() describe which (component, element)
// pairs the admin panel may customize, with display names for the editing
// forms.  The schema is static; it is the contract between the default
// registry, the stored customization rows, and the admin UI.
package content

// ElementType tells the admin form which editor to render.
type ElementType string

const (
	ElementText   ElementType = "text"
	ElementLink   ElementType = "link"
	ElementButton ElementType = "button"
	ElementHTML   ElementType = "html"
)

// Element is one editable field inside a component.
type Element struct {
	ID   string      `json:"id"`
	Type ElementType `json:"type"`
	Name string      `json:"name"`
}

// Component groups the editable elements of one page section.
type Component struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Elements []Element `json:"elements"`
}

// Components returns the full page-level schema.  The slice is rebuilt per
// call so callers may filter it freely.
func Components() []Component {
	return []Component{
		{ID: "HeroSection", Name: "Seção Principal", Elements: []Element{
			{ID: "mainTitle", Type: ElementText, Name: "Título Principal"},
			{ID: "mainSubtitle", Type: ElementText, Name: "Subtítulo"},
			{ID: "ctaButton", Type: ElementButton, Name: "Botão CTA"},
			{ID: "ctaButtonLink", Type: ElementLink, Name: "Link do Botão CTA"},
			{ID: "secondaryButton", Type: ElementButton, Name: "Botão Secundário"},
			{ID: "secondaryButtonLink", Type: ElementLink, Name: "Link do Botão Secundário"},
			{ID: "ratingText", Type: ElementText, Name: "Texto de Avaliação"},
			{ID: "usersText", Type: ElementText, Name: "Texto de Usuários"},
		}},
		{ID: "Header", Name: "Header", Elements: []Element{
			{ID: "howItWorksText", Type: ElementText, Name: "Texto Como Funciona"},
			{ID: "howItWorksLink", Type: ElementLink, Name: "Link Como Funciona"},
			{ID: "documentsText", Type: ElementText, Name: "Texto Documentos Populares"},
			{ID: "questionsText", Type: ElementText, Name: "Texto Dúvidas"},
			{ID: "questionsLink", Type: ElementLink, Name: "Link Dúvidas"},
			{ID: "ctaButtonText", Type: ElementText, Name: "Texto Botão CTA"},
			{ID: "ctaButtonLink", Type: ElementLink, Name: "Link Botão CTA"},
		}},
		{ID: "DocumentSelect", Name: "Seleção de Documentos", Elements: documentSelectElements()},
		{ID: "Benefits", Name: "Benefícios", Elements: benefitsElements()},
		{ID: "HowItWorks", Name: "Como Funciona", Elements: []Element{
			{ID: "sectionTitle", Type: ElementText, Name: "Título da Seção"},
			{ID: "sectionSubtitle", Type: ElementText, Name: "Subtítulo da Seção"},
			{ID: "step1Title", Type: ElementText, Name: "Título do Passo 1"},
			{ID: "step1Description", Type: ElementText, Name: "Descrição do Passo 1"},
			{ID: "step2Title", Type: ElementText, Name: "Título do Passo 2"},
			{ID: "step2Description", Type: ElementText, Name: "Descrição do Passo 2"},
			{ID: "step3Title", Type: ElementText, Name: "Título do Passo 3"},
			{ID: "step3Description", Type: ElementText, Name: "Descrição do Passo 3"},
		}},
		{ID: "PhotoTutorial", Name: "Tutorial de Fotos", Elements: []Element{
			{ID: "title", Type: ElementText, Name: "Título da Seção"},
			{ID: "description", Type: ElementText, Name: "Descrição"},
			{ID: "ctaButtonText", Type: ElementText, Name: "Texto do Botão"},
			{ID: "ctaButtonLink", Type: ElementLink, Name: "Link do Botão"},
			{ID: "step1Title", Type: ElementText, Name: "Título do Passo 1"},
			{ID: "step1Description", Type: ElementText, Name: "Descrição do Passo 1"},
			{ID: "step2Title", Type: ElementText, Name: "Título do Passo 2"},
			{ID: "step2Description", Type: ElementText, Name: "Descrição do Passo 2"},
			{ID: "step3Title", Type: ElementText, Name: "Título do Passo 3"},
			{ID: "step3Description", Type: ElementText, Name: "Descrição do Passo 3"},
		}},
		{ID: "FAQ", Name: "Perguntas Frequentes", Elements: faqElements()},
		{ID: "Footer", Name: "Rodapé", Elements: footerElements()},
		{ID: "StickyCTA", Name: "Botão Flutuante", Elements: []Element{
			{ID: "buttonText", Type: ElementText, Name: "Texto do Botão"},
			{ID: "buttonLink", Type: ElementLink, Name: "Link do Botão"},
			{ID: "gradientStartColor", Type: ElementText, Name: "Cor Inicial do Gradiente"},
			{ID: "gradientEndColor", Type: ElementText, Name: "Cor Final do Gradiente"},
			{ID: "topLineColor", Type: ElementText, Name: "Cor da Linha Superior"},
			{ID: "backgroundColor", Type: ElementText, Name: "Cor de Fundo"},
		}},
	}
}

// pageOnlyComponents never appear in the product schema.
var pageOnlyComponents = map[string]struct{}{
	"Header":         {},
	"StickyCTA":      {},
	"HowItWorks":     {},
	"Footer":         {},
	"FAQ":            {},
	"DocumentSelect": {},
	"PhotoTutorial":  {},
}

// ProductComponents filters the page schema down to product-editable
// components and appends the product-only PassportGuide, whose single
// element is a freeform HTML block.
func ProductComponents() []Component {
	var out []Component
	for _, c := range Components() {
		if _, skip := pageOnlyComponents[c.ID]; skip {
			continue
		}
		out = append(out, c)
	}

	out = append(out, Component{
		ID:   "PassportGuide",
		Name: "Guia de Passaporte",
		Elements: []Element{
			{ID: "html_content", Type: ElementHTML, Name: "Conteúdo HTML Completo"},
		},
	})
	return out
}

// ElementByID finds one element inside the given schema slice.  Used by the
// write path to learn the element type (HTML fields are sanitised).
func ElementByID(schema []Component, componentID, elementID string) (Element, bool) {
	for _, c := range schema {
		if c.ID != componentID {
			continue
		}
		for _, e := range c.Elements {
			if e.ID == elementID {
				return e, true
			}
		}
	}
	return Element{}, false
}

/*──────────────── long element lists, kept out of the literal ─────────────*/

func documentSelectElements() []Element {
	els := []Element{
		{ID: "sectionTitle", Type: ElementText, Name: "Título da Seção"},
		{ID: "viewMoreButtonText", Type: ElementText, Name: "Texto do Botão Ver Mais"},
		{ID: "viewMoreButtonLink", Type: ElementLink, Name: "Link do Botão Ver Mais"},
	}
	docs := []string{"1", "2", "3", "4"}
	for _, n := range docs {
		els = append(els,
			Element{ID: "document" + n + "Title", Type: ElementText, Name: "Título Documento " + n},
			Element{ID: "document" + n + "Image", Type: ElementText, Name: "Imagem Documento " + n},
			Element{ID: "document" + n + "Link", Type: ElementLink, Name: "Link Documento " + n},
			Element{ID: "document" + n + "ButtonText", Type: ElementText, Name: "Texto Botão Documento " + n},
		)
	}
	els = append(els,
		Element{ID: "testimonialsTitle", Type: ElementText, Name: "Título dos Depoimentos"},
		Element{ID: "testimonialsSubtitle", Type: ElementText, Name: "Subtítulo dos Depoimentos"},
	)
	for _, n := range []string{"1", "2", "3", "4", "5", "6"} {
		els = append(els,
			Element{ID: "testimonial" + n + "Name", Type: ElementText, Name: "Nome Depoimento " + n},
			Element{ID: "testimonial" + n + "Avatar", Type: ElementText, Name: "Avatar Depoimento " + n},
			Element{ID: "testimonial" + n + "Location", Type: ElementText, Name: "Localidade Depoimento " + n},
			Element{ID: "testimonial" + n + "Text", Type: ElementText, Name: "Texto Depoimento " + n},
		)
	}
	return els
}

func benefitsElements() []Element {
	els := []Element{
		{ID: "sectionTitle", Type: ElementText, Name: "Título da Seção"},
		{ID: "sectionDescription", Type: ElementText, Name: "Descrição da Seção"},
	}
	for _, n := range []string{"1", "2", "3", "4"} {
		els = append(els,
			Element{ID: "benefit" + n + "Title", Type: ElementText, Name: "Título do Benefício " + n},
			Element{ID: "benefit" + n + "Description", Type: ElementText, Name: "Descrição do Benefício " + n},
		)
	}
	els = append(els,
		Element{ID: "advantagesTitle", Type: ElementText, Name: "Título das Vantagens"},
		Element{ID: "advantagesDescription", Type: ElementText, Name: "Descrição das Vantagens"},
	)
	for _, n := range []string{"1", "2", "3"} {
		els = append(els,
			Element{ID: "advantage" + n + "Title", Type: ElementText, Name: "Título da Vantagem " + n},
			Element{ID: "advantage" + n + "Subtitle", Type: ElementText, Name: "Subtítulo da Vantagem " + n},
			Element{ID: "advantage" + n + "Description", Type: ElementText, Name: "Descrição da Vantagem " + n},
		)
	}
	// Requirements table: value cells then heading cells.
	els = append(els,
		Element{ID: "table_tamanho", Type: ElementText, Name: "Tamanho (Tabela)"},
		Element{ID: "table_resolucao", Type: ElementText, Name: "Resolução (Tabela)"},
		Element{ID: "table_online", Type: ElementText, Name: "Adequado para envio online (Tabela)"},
		Element{ID: "table_imprimivel", Type: ElementText, Name: "Imprimível (Tabela)"},
		Element{ID: "table_fundo", Type: ElementText, Name: "Cor do fundo (Tabela)"},
		Element{ID: "table_altura_cabeca", Type: ElementText, Name: "Altura da cabeça (Tabela)"},
		Element{ID: "table_distancia_olhos", Type: ElementText, Name: "Distância até os olhos (Tabela)"},
		Element{ID: "table_titulo_tamanho", Type: ElementText, Name: "Título: Tamanho"},
		Element{ID: "table_titulo_resolucao", Type: ElementText, Name: "Título: Resolução"},
		Element{ID: "table_titulo_online", Type: ElementText, Name: "Título: Adequado para envio online"},
		Element{ID: "table_titulo_imprimivel", Type: ElementText, Name: "Título: Imprimível"},
		Element{ID: "table_titulo_fundo", Type: ElementText, Name: "Título: Cor do fundo"},
		Element{ID: "table_titulo_parametros", Type: ElementText, Name: "Título: Parâmetros de definição"},
		Element{ID: "table_titulo_altura_cabeca", Type: ElementText, Name: "Título: Altura da cabeça"},
		Element{ID: "table_titulo_distancia_olhos", Type: ElementText, Name: "Título: Distância até os olhos"},
	)
	return els
}

func faqElements() []Element {
	els := []Element{
		{ID: "sectionTag", Type: ElementText, Name: "Título Tag"},
		{ID: "sectionTitle", Type: ElementText, Name: "Título da Seção"},
		{ID: "ctaButtonText", Type: ElementText, Name: "Texto do Botão"},
		{ID: "ctaButtonLink", Type: ElementLink, Name: "Link do Botão"},
	}
	for _, n := range []string{"1", "2", "3", "4", "5", "6", "7"} {
		els = append(els,
			Element{ID: "question" + n, Type: ElementText, Name: "Pergunta " + n},
			Element{ID: "answer" + n, Type: ElementText, Name: "Resposta " + n},
		)
	}
	return els
}

func footerElements() []Element {
	els := []Element{
		{ID: "copyrightText", Type: ElementText, Name: "Texto de Copyright"},
		{ID: "resourcesTitle", Type: ElementText, Name: "Título Coluna Recursos"},
		{ID: "documentsTitle", Type: ElementText, Name: "Título Coluna Documentos"},
		{ID: "usefulLinksTitle", Type: ElementText, Name: "Título Coluna Links Úteis"},
	}
	for _, n := range []string{"1", "2", "3", "4", "5"} {
		els = append(els,
			Element{ID: "resource" + n + "Text", Type: ElementText, Name: "Texto Recurso " + n},
			Element{ID: "resource" + n + "Url", Type: ElementLink, Name: "URL Recurso " + n},
		)
	}
	for _, n := range []string{"1", "2", "3", "4", "5"} {
		els = append(els,
			Element{ID: "document" + n + "Text", Type: ElementText, Name: "Texto Documento " + n},
			Element{ID: "document" + n + "Url", Type: ElementLink, Name: "URL Documento " + n},
		)
	}
	els = append(els,
		Element{ID: "useful1Text", Type: ElementText, Name: "Texto Link Útil 1"},
		Element{ID: "useful1Url", Type: ElementLink, Name: "URL Link Útil 1"},
		Element{ID: "link1Text", Type: ElementText, Name: "Texto Link 1"},
		Element{ID: "link1Url", Type: ElementLink, Name: "URL Link 1"},
		Element{ID: "link2Text", Type: ElementText, Name: "Texto Link 2"},
		Element{ID: "link2Url", Type: ElementLink, Name: "URL Link 2"},
		Element{ID: "useful4Text", Type: ElementText, Name: "Texto Link Útil 4"},
		Element{ID: "useful4Url", Type: ElementLink, Name: "URL Link Útil 4"},
	)
	return els
}
