// internal/content/defaults.go
//
// Default content registry.
//
// Two static nested mappings, per-page and per-product, from component name
// to element id to baseline value.  These are the values every visitor sees
// until an admin stores an override; they are also the reference the write
// path compares against for reset-to-default semantics.
//
// The registry is code, not data: it ships with the binary and is never
// persisted.  DefaultPageContent and DefaultProductContent return fresh
// clones so callers can overlay freely.
package content

var defaultPageContent = Map{
	"HeroSection": {
		"mainTitle":    "Fotos de Documentos Profissionais",
		"mainSubtitle": "Crie fotos para documentos em segundos com IA",
		"ctaButton":    "Comece Agora",
		"ctaButtonLink": "/upload",
		"ratingText":   "4.9 (6.493 avaliações)",
		"usersText":    "Mais de 200 mil usuários satisfeitos",
	},
	"Header": {
		"howItWorksText": "Como funciona?",
		"howItWorksLink": "/#how-it-works",
		"documentsText":  "Documentos populares",
		"questionsText":  "Dúvidas?",
		"questionsLink":  "/#faq",
		"ctaButtonText":  "Escolha o documento",
		"ctaButtonLink":  "/upload",
	},
	"DocumentSelect": {
		"sectionTitle":       "Escolha o documento",
		"viewMoreButtonText": "Ver mais documentos",
		"viewMoreButtonLink": "/ver-todos-documentos",
		"document1Title":      "Passaporte Brasileiro",
		"document1Image":      "/images/passaportebrasil.png",
		"document1Link":       "/pt-br/foto-passaporte",
		"document1ButtonText": "Iniciar",
		"document2Title":      "RG Brasileiro",
		"document2Image":      "/images/passaportebrasil.png",
		"document2Link":       "/pt-br/foto-rg",
		"document2ButtonText": "Iniciar",
		"document3Title":      "Passaporte Bebê",
		"document3Image":      "/images/passaportebrasil.png",
		"document3Link":       "/pt-br/foto-passaporte-bebe",
		"document3ButtonText": "Iniciar",
		"document4Title":      "CNH Brasileira",
		"document4Image":      "/images/passaportebrasil.png",
		"document4Link":       "/pt-br/foto-cnh",
		"document4ButtonText": "Iniciar",
		"testimonialsTitle":    "Clientes Reais, Histórias Reais.",
		"testimonialsSubtitle": "Veja o que nossos clientes estão falando e como Photo ID ajudou a aprovar seus vistos com nossas fotos.",
		"testimonial1Name":     "Fernando Lima",
		"testimonial1Avatar":   "/images/avt3.png",
		"testimonial1Location": "",
		"testimonial1Text":     "Nunca pensei que tirar foto para passaporte seria tão simples! Em apenas alguns minutos consegui fazer minha foto digital em casa.",
		"testimonial2Name":     "Roberto Barros",
		"testimonial2Avatar":   "/images/avt2.png",
		"testimonial2Location": "Santa Catarina - SC",
		"testimonial2Text":     "Estava com receio de usar um serviço online, mas fiquei impressionada com a qualidade e rapidez na entrega. Recomendo!",
		"testimonial3Name":     "Vânia Santana",
		"testimonial3Avatar":   "/images/avt1.png",
		"testimonial3Location": "Campinas - SC",
		"testimonial3Text":     "Usei o PhotoID para tirar a foto do passaporte dos meus filhos. Incrível como o resultado ficou profissional e foi aceito sem problemas.",
		"testimonial4Name":     "Carlos Andrade",
		"testimonial4Avatar":   "/images/testimonial-placeholder-c.png",
		"testimonial4Location": "Rio de Janeiro - RJ",
		"testimonial4Text":     "Processo muito intuitivo e o suporte foi ágil quando precisei. A foto ficou ótima e atendeu todas as exigências.",
		"testimonial5Name":     "Beatriz Costa",
		"testimonial5Avatar":   "/images/testimonial-placeholder-b.png",
		"testimonial5Location": "Belo Horizonte - MG",
		"testimonial5Text":     "Excelente! Economizei tempo e evitei filas. A qualidade da foto digital é perfeita para documentos oficiais.",
		"testimonial6Name":     "Paulo Mendes",
		"testimonial6Avatar":   "/images/testimonial-placeholder-p.png",
		"testimonial6Location": "Salvador - BA",
		"testimonial6Text":     "Serviço fantástico! Consegui a foto para minha CNH rapidamente e sem sair de casa. Recomendo a todos.",
	},
	"Benefits": {
		"sectionTitle":       "Principais benefícios de usar<br />nossa ferramenta de foto<br />para passaporte",
		"sectionDescription": "Fique à vontade em casa, pegue seu celular e tire algumas fotos. Termine com um resultado com o qual você esteja 100% satisfeito!",
		"benefit1Title":       "Independência",
		"benefit1Description": "Não há necessidade de dirigir ou esperar na fila. Tire uma boa onde quer que você esteja, usando apenas seu telefone.",
		"benefit2Title":       "Serviço confiável",
		"benefit2Description": "Mais de um milhão de usuários em todo o mundo. Fotos para passaporte e milhões de documentos gerados no TrustPilot.",
		"benefit3Title":       "Suporte profissional",
		"benefit3Description": "Perguntas ou dúvidas sobre suas fotos? Nossos especialistas em fotografia e agentes de suporte estão prontos em ajudá-lo.",
		"benefit4Title":       "Garantia de aceitação",
		"benefit4Description": "Depois que você fizer o pedido, nossa IA e um especialista humano verificarão sua foto para garantir que ela esteja 100% em conformidade.",
		"advantagesTitle":       "Vantagens de usar a PhotoID",
		"advantagesDescription": "Nós verificamos e garantimos que ela passe em todos os testes de conformidade.",
		"advantage1Title":       "Foto em",
		"advantage1Subtitle":    "3 segundos",
		"advantage1Description": "Tire sua foto em casa, sem esperar em filas ou se locomover até o local.",
		"advantage2Title":       "Serviço",
		"advantage2Subtitle":    "profissional",
		"advantage2Description": "Tecnologia IA + feedback instantâneo e profissional.",
		"advantage3Title":       "100% em",
		"advantage3Subtitle":    "confirmidade",
		"advantage3Description": "Garante que sua foto será aceita conforme diretrizes e legislação.",
	},
	"HowItWorks": {
		"sectionTitle":    "Como Funciona o PhotoID",
		"sectionSubtitle": "Tire a foto biométrica perfeita para passaporte em menos de 30 segundos!",
		"step1Title":       "Tire ou carregue uma foto",
		"step1Description": "Use uma foto que você já tem ou tire uma nova. Nós verificaremos e garantimos que ela passe em todos os testes de conformidade.",
		"step2Title":       "Ajustamos a sua foto com IA",
		"step2Description": "Nosso sistema de IA cortará, redimensionará e ajustará o fundo da sua imagem.",
		"step3Title":       "Verificação especializada",
		"step3Description": "Nossa IA analisará cuidadosamente sua foto de passaporte, fornecendo feedback em menos de um minuto!",
	},
	"PhotoTutorial": {
		"title":         "Como tirar uma foto para documento<br />em casa usando seu celular",
		"description":   "Siga estas diretrizes para criar a foto perfeita para passaporte.",
		"ctaButtonText": "Escolha o documento",
		"ctaButtonLink": "/upload",
		"step1Title":       "Mantenha uma distância segura",
		"step1Description": "Mantenha sua câmera frontal a 40-50 cm de distância do rosto. Para câmeras traseiras, mantenha uma distância de 1-2 metros.",
		"step2Title":       "Mantenha a cabeça e o corpo retos",
		"step2Description": "Olhe diretamente para a câmera e evite inclinar seu corpo. Lembre-se de manter uma expressão neutra ao tirar a foto.",
		"step3Title":       "Prepare uma boa iluminação",
		"step3Description": "Tire suas fotos para passaporte em um ambiente com luz do dia, como perto de uma janela em um dia ensolarado.",
	},
	"FAQ": {
		"sectionTag":    "FAQ",
		"sectionTitle":  "Tire suas dúvidas nas perguntas frequentes",
		"ctaButtonText": "Escolha o documento",
		"ctaButtonLink": "/upload",
		"question1": "O PhotoID está em conformidade com os requisitos de fotos para passaporte Brasileiro?",
		"answer1":   "Sim, nosso serviço está totalmente em conformidade com todos os requisitos oficiais para fotos de passaporte brasileiro. Garantimos que suas fotos serão aceitas pelas autoridades.",
		"question2": "E quanto a outros documentos de identificação com foto e papel?",
		"answer2":   "Nosso serviço suporta vários tipos de documentos, incluindo RG, CNH, vistos, carteiras profissionais e outros documentos de identificação com foto. Temos padrões específicos para cada tipo de documento.",
		"question3": "Onde posso imprimir as fotos do meu passaporte?",
		"answer3":   "Você pode imprimir suas fotos em qualquer gráfica, papelaria ou loja de fotografia. Fornecemos arquivos em alta resolução que podem ser impressos no formato correto para seu documento.",
		"question4": "O que está incluso na garantia pós-projeto?",
		"answer4":   "Nossa garantia inclui o compromisso de que suas fotos serão aceitas pelas autoridades. Se sua foto for rejeitada por qualquer razão técnica que seja nossa responsabilidade, oferecemos reembolso total ou fazemos os ajustes necessários gratuitamente.",
		"question5": "O que é um criador de foto para passaporte?",
		"answer5":   "Um criador de foto para passaporte é uma ferramenta que permite que você tire, ajuste e prepare fotos que atendam aos requisitos específicos de documentos oficiais, como passaportes, vistos e outros documentos de identificação.",
		"question6": "O PhotoID é seguro?",
		"answer6":   "Sim, o PhotoID é 100% seguro. Utilizamos conexões criptografadas para transferência de dados e não armazenamos suas fotos permanentemente após o processamento. Sua privacidade e segurança são nossas prioridades.",
		"question7": "Como funciona o processo de compra?",
		"answer7":   "O processo é simples: faça o upload de sua foto, nossa IA ajustará automaticamente para atender aos requisitos, você receberá uma versão prévia para aprovação e, após o pagamento, receberá os arquivos finais em alta resolução prontos para impressão.",
	},
	"Footer": {
		"copyrightText":    "© 2024 PhotoID. Todos os direitos reservados.",
		"resourcesTitle":   "Recursos",
		"documentsTitle":   "Documentos",
		"usefulLinksTitle": "Links Úteis",
		"resource1Text": "Guia de Uso",
		"resource1Url":  "/guia",
		"resource2Text": "Tutoriais",
		"resource2Url":  "/tutoriais",
		"resource3Text": "Suporte",
		"resource3Url":  "/suporte",
		"resource4Text": "Treinamento",
		"resource4Url":  "/treinamento",
		"resource5Text": "FAQ",
		"resource5Url":  "/faq",
		"document1Text": "Termos de Uso",
		"document1Url":  "/termos",
		"document2Text": "Política de Privacidade",
		"document2Url":  "/privacidade",
		"document3Text": "Licença",
		"document3Url":  "/licenca",
		"document4Text": "Certificações",
		"document4Url":  "/certificacoes",
		"document5Text": "Conformidade",
		"document5Url":  "/conformidade",
		"useful1Text": "Blog",
		"useful1Url":  "/blog",
		"link1Text":   "Contato",
		"link1Url":    "/contato",
		"link2Text":   "Sobre nós",
		"link2Url":    "/sobre",
		"useful4Text": "Parceiros",
		"useful4Url":  "/parceiros",
	},
	"StickyCTA": {
		"buttonText":         "Escolha o documento",
		"buttonLink":         "/upload",
		"gradientStartColor": "#6A0FDA",
		"gradientEndColor":   "#B45DEB",
		"topLineColor":       "linear-gradient(to right, #6A0FDA, #B45DEB)",
		"backgroundColor":    "#F1F6FA",
	},
}

var defaultProductContent = Map{
	"HeroSection": {
		"mainTitle":           "Foto para Passaporte",
		"mainSubtitle":        "Fotos perfeitas para seu passaporte em minutos",
		"ctaButton":           "Criar Foto de Passaporte",
		"ctaButtonLink":       "/upload",
		"secondaryButton":     "Faça o upload da sua imagem",
		"secondaryButtonLink": "/upload",
		"ratingText":          "4.9 (6.493 avaliações)",
		"usersText":           "Mais de 200 mil usuários satisfeitos",
	},
	"Header": {
		"howItWorksText": "Como funciona?",
		"howItWorksLink": "/#how-it-works",
		"documentsText":  "Documentos populares",
		"questionsText":  "Dúvidas?",
		"questionsLink":  "/#faq",
		"ctaButtonText":  "Escolha o documento",
		"ctaButtonLink":  "/upload",
	},
	"Benefits": {
		"sectionTitle":       "Fotos para o passaporte Brasileiro",
		"sectionDescription": "Para solicitar um passaporte brasileiro, a foto deve atender aos seguintes requisitos:",
		"benefit1Title":       "Conforme Padrões Oficiais",
		"benefit1Description": "Atende a todos os requisitos de tamanho e formato",
		"advantage1Title":       "Foto em",
		"advantage1Subtitle":    "3 segundos",
		"advantage1Description": "Tire sua foto em casa, sem esperar em filas ou se locomover até o local.",
		"advantage2Title":       "Serviço",
		"advantage2Subtitle":    "profissional",
		"advantage2Description": "Tecnologia IA + feedback instantâneo e profissional.",
		"advantage3Title":       "100% em",
		"advantage3Subtitle":    "confirmidade",
		"advantage3Description": "Garante que sua foto será aceita conforme diretrizes e legislação.",
		"table_tamanho":         "5,08 cm x 5,08 cm",
		"table_resolucao":       "300 dpi",
		"table_online":          "Sim",
		"table_imprimivel":      "Sim",
		"table_fundo":           "Branco",
		"table_altura_cabeca":   "1.29 polegada → 3.28 cm",
		"table_distancia_olhos": "1.18 polegada → 3.00 cm",
		"table_titulo_tamanho":          "Tamanho",
		"table_titulo_resolucao":        "Resolução",
		"table_titulo_online":           "É adequado para envio on-line?",
		"table_titulo_imprimivel":       "É imprimível?",
		"table_titulo_fundo":            "Cor do fundo",
		"table_titulo_parametros":       "Parâmetros de definição de imagem",
		"table_titulo_altura_cabeca":    "Altura da cabeça:",
		"table_titulo_distancia_olhos":  "Do fundo da foto até a linha dos olhos:",
	},
	"HowItWorks": {
		"sectionTitle":     "Como Obter sua Foto de Passaporte",
		"step1Title":       "Faça upload da sua foto",
		"step1Description": "Use uma selfie ou foto existente",
		"step2Title":       "Nossa IA ajusta tudo",
		"step2Description": "Formato, tamanho e fundo são ajustados automaticamente",
		"step3Title":       "Baixe o resultado",
		"step3Description": "Sua foto estará pronta para impressão ou envio digital",
	},
	"PassportGuide": {
		"html_content": defaultPassportGuideHTML,
	},
	"FAQ": {
		"sectionTitle": "Dúvidas sobre Fotos de Passaporte",
		"question1":    "Quais são os requisitos para fotos de passaporte?",
		"answer1":      "As fotos devem ter fundo branco, iluminação uniforme e expressão neutra. Nossa IA garante que todos esses requisitos sejam atendidos.",
		"question2":    "Posso usar óculos na foto do passaporte?",
		"answer2":      "Em geral, não é recomendado usar óculos na foto do passaporte, a menos que haja necessidade médica.",
		"question3":    "Quanto tempo a foto de passaporte é válida?",
		"answer3":      "A validade da foto depende do país, mas geralmente as fotos devem ser recentes (menos de 6 meses).",
	},
	"Footer": {
		"copyrightText": "© 2023 SiteID - Todos os direitos reservados",
		"link1Text":     "Termos de Uso",
		"link1Url":      "/termos",
		"link2Text":     "Política de Privacidade",
		"link2Url":      "/privacidade",
	},
}

// DefaultPageContent returns a fresh clone of the page-level registry.
func DefaultPageContent() Map { return defaultPageContent.Clone() }

// DefaultProductContent returns a fresh clone of the product-level registry.
func DefaultProductContent() Map { return defaultProductContent.Clone() }

// DefaultValue looks up the baseline value for one element under the given
// entity type.  ok == false when the registry has no such element.
func DefaultValue(entity EntityType, component, elementID string) (string, bool) {
	src := defaultPageContent
	if entity == EntityProduct {
		src = defaultProductContent
	}
	elems, ok := src[component]
	if !ok {
		return "", false
	}
	val, ok := elems[elementID]
	return val, ok
}
