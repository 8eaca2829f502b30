package catalog

var products = []Product{
	{
		ID:                        ProductClub,
		Label:                     "Club",
		DefaultGeneralDescription: "Hub para transportadoras focado em comunidade, benefícios exclusivos e rede de contatos.",
		DefaultPersonaDescriptions: map[Persona]string{
			PersonaEmbarcador:    "Empresários e gestores de logística de empresas embarcadoras de pequeno e médio porte, com idade entre 35-55 anos. Buscam otimização de custos, eficiência na cadeia de suprimentos e soluções tecnológicas para gestão de fretes. Valorizam transparência, segurança e a oportunidade de encontrar transportadoras parceiras inovadoras. Frequentam eventos do setor e utilizam redes sociais profissionais como LinkedIn para informações e tendências, mas com foco em soluções que beneficiem sua operação.",
			PersonaTransportador: "Donos e gestores de transportadoras de cargas, geralmente homens e mulheres entre 40-60 anos, com experiência no setor. Focados em rentabilidade, gestão de frota, segurança da carga e expansão de novos negócios. Interessados em tecnologias que facilitem a operação, acesso a crédito justo e otimização de rotas. Buscam uma comunidade onde possam trocar experiências, encontrar benefícios exclusivos e aumentar sua rede de contatos para parcerias e melhores oportunidades de frete. Presentes em grupos de WhatsApp e fóruns de transportadores, e buscam conteúdo prático e direto que mostre resultados.",
		},
		Style: Style{Icon: "fa-users", Color: "text-orange-500", Background: "bg-orange-50"},
	},
	{
		ID:                        ProductCarbonFree,
		Label:                     "carbonFree",
		DefaultGeneralDescription: "Solução de compensação de carbono com foco em ESG na prática, diferencial competitivo e frete verde.",
		DefaultPersonaDescriptions: map[Persona]string{
			PersonaEmbarcador:    "Empresas embarcadoras de médio a grande porte, com diretorias e gestores de sustentabilidade ou ESG (30-50 anos), que já possuem ou estão implementando políticas de responsabilidade socioambiental. Buscam fornecedores que apoiem suas metas ESG, minimizem sua pegada de carbono e ofereçam um diferencial de marketing verde. Valorizam relatórios claros, impacto real e parcerias estratégicas. Participam de conselhos e associações de sustentabilidade.",
			PersonaTransportador: "Transportadoras de médio a grande porte, com visão de futuro e gestores engajados (35-55 anos), que entendem a importância da sustentabilidade como um valor de marca e um atrativo para embarcadores. Buscam soluções práticas e acessíveis para compensar suas emissões, comunicar seu compromisso ESG e se diferenciar no mercado. Valorizam a facilidade de implementação e o reconhecimento de mercado por iniciativas verdes. Interessados em como a sustentabilidade pode se traduzir em novos negócios.",
		},
		Style: Style{Icon: "fa-leaf", Color: "text-green-500", Background: "bg-green-50"},
	},
	{
		ID:                        ProductSaaS,
		Label:                     "Plataforma",
		DefaultGeneralDescription: "Plataforma de gestão com foco em digitalização, transparência e redução de custos operacionais.",
		DefaultPersonaDescriptions: map[Persona]string{
			PersonaEmbarcador:    "Gestores de logística e suprimentos de indústrias e varejistas de médio porte (28-48 anos), que sofrem com a falta de visibilidade, processos manuais e ineficiência na contratação e gestão de fretes. Buscam ferramentas que centralizem informações, automatizem tarefas e proporcionem maior controle e economia. Valorizam a facilidade de integração, relatórios claros e a capacidade de tomar decisões mais rápidas e assertivas. Utilizam ERPs e CRMs em suas operações.",
			PersonaTransportador: "Empresas de transporte e seus gestores operacionais (30-50 anos) que lidam com a complexidade da roteirização, controle de veículos, documentação e comunicação com motoristas e embarcadores. Buscam uma plataforma intuitiva que simplifique o dia a dia, reduza erros, otimize a utilização da frota e proporcione maior transparência em todas as etapas da operação. Valorizam a redução de papelada, a agilidade no pagamento e a organização de suas informações financeiras e operacionais.",
		},
		Style: Style{Icon: "fa-laptop-code", Color: "text-red-500", Background: "bg-red-50"},
	},
	{
		ID:                        ProductNaConta,
		Label:                     "naConta",
		DefaultGeneralDescription: "Banco do transportador focado em fluxo de caixa, facilidade financeira e crédito justo.",
		DefaultPersonaDescriptions: map[Persona]string{
			PersonaEmbarcador:    "Embarcadores que buscam segurança e agilidade nas transações financeiras com suas transportadoras parceiras. Preocupados com a saúde financeira da sua cadeia logística e interessados em soluções que garantam a estabilidade e o bom relacionamento com os prestadores de serviço. Valorizam a transparência e a confiabilidade de uma plataforma que apoie seus parceiros transportadores.",
			PersonaTransportador: "Transportadores autônomos e pequenas e médias empresas de transporte (30-55 anos), que enfrentam dificuldades com o acesso a crédito, burocracia bancária e gestão ineficiente do fluxo de caixa. Buscam uma solução financeira que entenda suas particularidades, ofereça taxas justas, agilize pagamentos e facilite o gerenciamento das finanças. Valorizam a conveniência de um banco digital especializado, com suporte ágil e que ofereça serviços como antecipação de recebíveis e linhas de crédito flexíveis para capital de giro.",
		},
		Style: Style{Icon: "fa-wallet", Color: "text-blue-500", Background: "bg-blue-50"},
	},
	{
		ID:                        ProductView,
		Label:                     "View",
		DefaultGeneralDescription: "Inteligência Artificial para frete focada em futuro, análise preditiva e tomada de decisão baseada em dados.",
		DefaultPersonaDescriptions: map[Persona]string{
			PersonaEmbarcador:    "Diretores e gestores de supply chain e logística de grandes empresas (38-58 anos), que precisam tomar decisões estratégicas complexas sobre a contratação de fretes, roteirização e planejamento de demanda. Buscam insights acionáveis baseados em IA, previsões de mercado e ferramentas que otimizem a negociação e reduzam riscos. Valorizam a inovação, a capacidade de antecipar cenários e a segurança de dados para garantir vantagem competitiva.",
			PersonaTransportador: "Gestores de planejamento e diretores comerciais de transportadoras de grande porte (35-55 anos), que buscam otimizar suas operações, precificar fretes de forma mais estratégica e identificar novas oportunidades de negócio. Interessados em inteligência de mercado, análise preditiva de demanda e ferramentas que auxiliem na tomada de decisões complexas. Valorizam a visibilidade de mercado, a capacidade de prever tendências e a maximização da rentabilidade da frota.",
		},
		Style: Style{Icon: "fa-chart-line", Color: "text-yellow-500", Background: "bg-yellow-50"},
	},
}

var channels = []Channel{
	{
		ID:    ChannelEmail,
		Label: "Email Marketing",
		Icon:  "fa-envelope-open-text",
		DefaultPrompt: `Additional role: act as a senior copywriter specialised in direct response and email marketing.
Task: write a sales or engagement email for logistics managers, carrier owners and supply professionals.
Context for this email (infer from PRODUCT CONTEXT and CENTRAL THEME):
  * Product or service: infer the product name from PRODUCT CONTEXT.
  * Main pain it solves: infer from PRODUCT CONTEXT.
  * Unique differentiator: infer from PRODUCT CONTEXT.
  * Offer or goal: infer from CENTRAL THEME and PRODUCT CONTEXT (present the solution, book a demo, etc).
Writing guidelines:
  * Use the AIDA (Attention, Interest, Desire, Action) or PAS (Problem, Agitation, Solution) framework.
  * The tone must be persuasive and professional.
  * Write 3 subject line options: one driven by curiosity, one by a direct benefit and one by urgency.
  * The body must use short sentences and paragraphs of at most 3 lines for mobile reading.
  * End with a P.S. reinforcing scarcity or the main benefit.
Restrictions: avoid spam trigger words (uppercase "FREE", "make money", "click here") to protect deliverability.`,
	},
	{
		ID:    ChannelSocial,
		Label: "Redes Sociais",
		Icon:  "fa-share-nodes",
		DefaultPrompt: `Art text (short and punchy).
Caption (with hashtags and a CTA pointing to the link in bio or the comments).`,
	},
	{
		ID:    ChannelBlog,
		Label: "Artigo de Blog",
		Icon:  "fa-blog",
		DefaultPrompt: `SEO-friendly title.
Summary structured in 3 main topics.`,
	},
}
