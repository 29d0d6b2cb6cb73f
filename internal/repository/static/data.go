package staticrepo

import "dunkstore-backend/internal/domain"

const placeholderImage = "/placeholder.svg?height=300&width=300"

func ptr[T any](v T) *T { return &v }

func sampleProducts() []domain.Product {
	return []domain.Product{
		{
			ID:            1,
			Name:          "Nike Dunk Low Retro White/Black",
			Price:         899.99,
			OriginalPrice: ptr(1199.99),
			Image:         placeholderImage,
			Badge:         ptr("PROMOÇÃO"),
			Rating:        4.8,
			Reviews:       127,
			Sizes:         []string{"38", "39", "40", "41", "42", "43"},
			Colors:        []string{"Branco/Preto", "Preto/Branco"},
			Gender:        domain.GenderUnisex,
			Description:   "O Nike Dunk Low Retro traz de volta o ícone do basquete dos anos 80 com detalhes premium e conforto moderno. Com cabedal em couro genuíno e solado de borracha durável, este tênis combina estilo clássico com performance contemporânea.",
			Features: []string{
				"Cabedal em couro genuíno premium",
				"Solado de borracha com tração multidirecional",
				"Espuma no colarinho para conforto extra",
				"Design icônico dos anos 80",
				"Palmilha acolchoada removível",
			},
			StockCount: ptr(15),
			Brand:      "Nike",
			Category:   "Dunk Low",
		},
		{
			ID:            2,
			Name:          "Nike Dunk High Vintage Navy",
			Price:         749.99,
			OriginalPrice: ptr(999.99),
			Image:         placeholderImage,
			Badge:         ptr("LANÇAMENTO"),
			Rating:        4.9,
			Reviews:       89,
			Sizes:         []string{"38", "39", "40", "41", "42"},
			Colors:        []string{"Azul Marinho", "Azul/Branco"},
			Gender:        domain.GenderMale,
			Description:   "Nike Dunk High com design vintage e cores clássicas. Perfeito para quem busca estilo retrô com qualidade moderna.",
			Features: []string{
				"Design vintage autêntico",
				"Cores clássicas atemporais",
				"Construção durável",
				"Conforto para uso diário",
				"Estilo icônico dos anos 80",
			},
			StockCount: ptr(8),
			Brand:      "Nike",
			Category:   "Dunk High",
		},
		{
			ID:          3,
			Name:        "Nike Dunk SB Street Pink",
			Price:       1099.99,
			Image:       placeholderImage,
			Badge:       ptr("EXCLUSIVO"),
			Rating:      4.7,
			Reviews:     67,
			Sizes:       []string{"35", "36", "37", "38", "39"},
			Colors:      []string{"Rosa/Branco", "Rosa Claro"},
			Gender:      domain.GenderFemale,
			Description: "Nike Dunk SB com design exclusivo em rosa. Desenvolvido especialmente para skateboard com tecnologia avançada.",
			Features: []string{
				"Tecnologia SB para skateboard",
				"Design exclusivo feminino",
				"Cores vibrantes",
				"Durabilidade superior",
				"Grip especializado",
			},
			StockCount: ptr(12),
			Brand:      "Nike",
			Category:   "Dunk SB",
		},
		{
			ID:          4,
			Name:        "Nike Dunk Low Championship Red",
			Price:       999.99,
			Image:       placeholderImage,
			Rating:      4.6,
			Reviews:     156,
			Sizes:       []string{"39", "40", "41", "42", "43", "44"},
			Colors:      []string{"Vermelho/Branco", "Vermelho Escuro"},
			Gender:      domain.GenderMale,
			Description: "Nike Dunk Low em vermelho championship. Uma homenagem aos grandes momentos do basquete.",
			Features: []string{
				"Cores championship clássicas",
				"Design inspirado no basquete",
				"Qualidade premium",
				"Conforto excepcional",
				"Estilo atemporal",
			},
			StockCount: ptr(20),
			Brand:      "Nike",
			Category:   "Dunk Low",
		},
		{
			ID:          5,
			Name:        "Nike Dunk High Pro SB",
			Price:       1299.99,
			Image:       placeholderImage,
			Badge:       ptr("LIMITADO"),
			Rating:      4.9,
			Reviews:     203,
			Sizes:       []string{"38", "39", "40", "41", "42"},
			Colors:      []string{"Preto/Dourado", "Preto/Prata"},
			Gender:      domain.GenderUnisex,
			Description: "Nike Dunk High Pro SB edição limitada. O máximo em tecnologia e estilo para skateboard profissional.",
			Features: []string{
				"Edição limitada",
				"Tecnologia Pro SB",
				"Detalhes premium",
				"Performance profissional",
				"Design exclusivo",
			},
			StockCount: ptr(5),
			Brand:      "Nike",
			Category:   "Dunk SB",
		},
		{
			ID:            6,
			Name:          "Nike Dunk Low Coast",
			Price:         849.99,
			OriginalPrice: ptr(1099.99),
			Image:         placeholderImage,
			Badge:         ptr("OFERTA"),
			Rating:        4.5,
			Reviews:       98,
			Sizes:         []string{"35", "36", "37", "38", "39", "40"},
			Colors:        []string{"Azul/Branco", "Azul Claro"},
			Gender:        domain.GenderFemale,
			Description:   "Nike Dunk Low Coast com inspiração praiana. Cores suaves e design relaxado para o dia a dia.",
			Features: []string{
				"Inspiração praiana",
				"Cores suaves e relaxantes",
				"Design feminino",
				"Conforto para uso diário",
				"Estilo casual",
			},
			StockCount: ptr(18),
			Brand:      "Nike",
			Category:   "Dunk Low",
		},
	}
}

func sampleFAQ() []domain.FAQItem {
	const (
		delivery = "Pedidos e Entrega"
		products = "Produtos e Autenticidade"
		returns  = "Trocas e Devoluções"
		payment  = "Pagamento"
		account  = "Conta e Cadastro"
	)
	return []domain.FAQItem{
		{ID: 1, Category: delivery, Question: "Como rastrear meu pedido?", Answer: "Após a confirmação do pagamento, você receberá um código de rastreamento por email. Você também pode acompanhar o status do seu pedido na seção 'Meus Pedidos' da sua conta."},
		{ID: 2, Category: delivery, Question: "Qual o prazo de entrega?", Answer: "O prazo de entrega varia conforme sua localização: Região Sudeste: 2-4 dias úteis, Região Sul: 3-5 dias úteis, Região Nordeste: 4-7 dias úteis, Região Norte e Centro-Oeste: 5-10 dias úteis. Oferecemos frete grátis para compras acima de R$ 299."},
		{ID: 3, Category: delivery, Question: "Vocês entregam em todo o Brasil?", Answer: "Sim! Entregamos em todo território nacional através dos Correios e transportadoras parceiras. O frete é calculado automaticamente no checkout baseado no seu CEP."},
		{ID: 4, Category: products, Question: "Como garantir a autenticidade dos produtos?", Answer: "Todos os nossos Nike Dunk são 100% originais e adquiridos diretamente da Nike ou distribuidores autorizados. Cada produto vem com nota fiscal e certificado de autenticidade. Oferecemos garantia total contra produtos falsificados."},
		{ID: 5, Category: products, Question: "Os produtos têm garantia?", Answer: "Sim! Todos os produtos têm garantia de 90 dias contra defeitos de fabricação, conforme o Código de Defesa do Consumidor. A garantia Nike original também se aplica."},
		{ID: 6, Category: products, Question: "Como escolher o tamanho correto?", Answer: "Recomendamos consultar nossa tabela de tamanhos disponível em cada produto. Os Nike Dunk geralmente seguem a numeração padrão Nike. Em caso de dúvida, entre em contato conosco pelo WhatsApp para orientação personalizada."},
		{ID: 7, Category: returns, Question: "Política de trocas e devoluções", Answer: "Você tem até 30 dias para solicitar troca ou devolução. O produto deve estar em perfeito estado, com etiquetas e embalagem original. A primeira troca é gratuita. Para devoluções, o estorno é feito em até 5 dias úteis."},
		{ID: 8, Category: returns, Question: "Como solicitar uma troca?", Answer: "Acesse 'Meus Pedidos' na sua conta, selecione o item e clique em 'Solicitar Troca'. Você também pode entrar em contato pelo WhatsApp (11) 99999-9999 ou pelo email de atendimento."},
		{ID: 9, Category: returns, Question: "Posso trocar por outro modelo?", Answer: "Sim! Você pode trocar por qualquer produto de valor igual ou superior (pagando a diferença). Para produtos de valor menor, o crédito fica disponível para futuras compras."},
		{ID: 10, Category: payment, Question: "Formas de pagamento aceitas", Answer: "Aceitamos: Cartão de crédito (Visa, Mastercard, Elo, American Express) em até 12x sem juros, Cartão de débito, PIX (5% de desconto), Boleto bancário. Todos os pagamentos são processados com segurança."},
		{ID: 11, Category: payment, Question: "O pagamento é seguro?", Answer: "Sim! Utilizamos criptografia SSL e processamos pagamentos através de gateways seguros. Seus dados financeiros são protegidos e nunca armazenados em nossos servidores."},
		{ID: 12, Category: payment, Question: "Posso parcelar minha compra?", Answer: "Sim! Oferecemos parcelamento em até 12x sem juros no cartão de crédito para compras acima de R$ 200. Para valores menores, o parcelamento pode ter juros conforme a operadora do cartão."},
		{ID: 13, Category: account, Question: "Como criar uma conta?", Answer: "Clique em 'Entrar' no topo da página e depois em 'Cadastrar'. Preencha seus dados básicos e pronto! Ter uma conta facilita suas compras e permite acompanhar pedidos e favoritos."},
		{ID: 14, Category: account, Question: "Esqueci minha senha, como recuperar?", Answer: "Na página de login, clique em 'Esqueci minha senha'. Digite seu email e enviaremos instruções para criar uma nova senha. Se não receber o email, verifique a caixa de spam."},
		{ID: 15, Category: account, Question: "Posso alterar meus dados cadastrais?", Answer: "Sim! Acesse 'Minha Conta' e edite suas informações pessoais, endereço de entrega e preferências. Mantenha seus dados sempre atualizados para uma melhor experiência."},
	}
}

func sampleReviews() []domain.Review {
	verified, unverified := ptr(true), ptr(false)
	return []domain.Review{
		{ID: 1, ProductID: 1, UserName: "Carlos Silva", Rating: 5, Date: "15/12/2024", Verified: verified, Comment: "Tênis incrível! Qualidade excepcional e muito confortável. Recomendo!"},
		{ID: 2, ProductID: 1, UserName: "Ana Santos", Rating: 4, Date: "10/12/2024", Verified: verified, Comment: "Muito bonito e bem feito. Chegou rapidinho e exatamente como nas fotos."},
		{ID: 3, ProductID: 1, UserName: "Pedro Costa", Rating: 5, Date: "08/12/2024", Verified: verified, Comment: "Melhor compra que fiz! Qualidade Nike original, super recomendo a loja."},
		{ID: 4, ProductID: 1, UserName: "Maria Oliveira", Rating: 5, Date: "05/12/2024", Verified: verified, Comment: "Perfeito! Chegou antes do prazo e a qualidade é excelente. Já é meu tênis favorito!"},
		{ID: 5, ProductID: 1, UserName: "João Ferreira", Rating: 4, Date: "02/12/2024", Verified: unverified, Comment: "Muito bom produto, só achei que poderia ter mais opções de cor."},
		{ID: 6, ProductID: 2, UserName: "Lucas Mendes", Rating: 5, Date: "12/12/2024", Verified: verified, Comment: "Design vintage incrível! Muito confortável para uso diário."},
		{ID: 7, ProductID: 2, UserName: "Fernanda Lima", Rating: 4, Date: "08/12/2024", Verified: verified, Comment: "Lindo tênis, qualidade boa. Recomendo!"},
		{ID: 8, ProductID: 2, UserName: "Roberto Silva", Rating: 5, Date: "04/12/2024", Verified: verified, Comment: "Excelente produto, superou minhas expectativas!"},
		{ID: 9, ProductID: 3, UserName: "Camila Rodrigues", Rating: 5, Date: "14/12/2024", Verified: verified, Comment: "Apaixonada por esse tênis! A cor é linda e o conforto é perfeito."},
		{ID: 10, ProductID: 3, UserName: "Juliana Costa", Rating: 4, Date: "09/12/2024", Verified: verified, Comment: "Muito bonito, mas achei um pouco apertado. Talvez seja melhor pedir um número maior."},
		{ID: 11, ProductID: 3, UserName: "Amanda Souza", Rating: 5, Date: "06/12/2024", Verified: verified, Comment: "Perfeito para skateboard! Design exclusivo e muito resistente."},
		{ID: 12, ProductID: 4, UserName: "Rafael Santos", Rating: 5, Date: "13/12/2024", Verified: verified, Comment: "Cor incrível! Muito estiloso e confortável."},
		{ID: 13, ProductID: 4, UserName: "Diego Almeida", Rating: 4, Date: "07/12/2024", Verified: verified, Comment: "Bom produto, mas demorou um pouco para chegar."},
		{ID: 14, ProductID: 4, UserName: "Thiago Pereira", Rating: 5, Date: "03/12/2024", Verified: verified, Comment: "Excelente qualidade! Já comprei outros modelos na loja."},
		{ID: 15, ProductID: 5, UserName: "Bruno Martins", Rating: 5, Date: "11/12/2024", Verified: verified, Comment: "Edição limitada incrível! Vale cada centavo."},
		{ID: 16, ProductID: 5, UserName: "Gabriel Silva", Rating: 5, Date: "05/12/2024", Verified: verified, Comment: "Perfeito para skateboard profissional. Tecnologia de ponta!"},
		{ID: 17, ProductID: 6, UserName: "Isabella Rocha", Rating: 4, Date: "10/12/2024", Verified: verified, Comment: "Cores suaves e muito bonito. Confortável para o dia a dia."},
		{ID: 18, ProductID: 6, UserName: "Sophia Oliveira", Rating: 5, Date: "06/12/2024", Verified: verified, Comment: "Apaixonada! Design praiano perfeito para o verão."},
	}
}

func storeAddress() domain.Address {
	return domain.Address{
		Street:       "Rua das Flores",
		Number:       "123",
		Complement:   ptr("Apto 45"),
		Neighborhood: "Vila Madalena",
		City:         "São Paulo",
		State:        "SP",
		ZipCode:      "05435-000",
	}
}

func sampleOrders() []domain.Order {
	return []domain.Order{
		{
			ID:     "DK2024001",
			Date:   "15/12/2024",
			Status: domain.OrderStatusDelivered,
			Items: []domain.OrderItem{
				{ProductID: 1, ProductName: "Nike Dunk Low Retro White/Black", ProductImage: placeholderImage, Size: "42", Color: "Branco/Preto", Quantity: 1, Price: 899.99},
			},
			Total:             899.99,
			ShippingAddress:   storeAddress(),
			TrackingCode:      ptr("BR123456789"),
			EstimatedDelivery: ptr("18/12/2024"),
		},
		{
			ID:     "DK2024002",
			Date:   "10/12/2024",
			Status: domain.OrderStatusShipped,
			Items: []domain.OrderItem{
				{ProductID: 3, ProductName: "Nike Dunk SB Street Pink", ProductImage: placeholderImage, Size: "38", Color: "Rosa/Branco", Quantity: 1, Price: 1099.99},
			},
			Total:             1099.99,
			ShippingAddress:   storeAddress(),
			TrackingCode:      ptr("BR987654321"),
			EstimatedDelivery: ptr("20/12/2024"),
		},
		{
			ID:     "DK2024003",
			Date:   "05/12/2024",
			Status: domain.OrderStatusConfirmed,
			Items: []domain.OrderItem{
				{ProductID: 2, ProductName: "Nike Dunk High Vintage Navy", ProductImage: placeholderImage, Size: "41", Color: "Azul Marinho", Quantity: 1, Price: 749.99},
				{ProductID: 6, ProductName: "Nike Dunk Low Coast", ProductImage: placeholderImage, Size: "39", Color: "Azul/Branco", Quantity: 1, Price: 849.99},
			},
			Total:             1599.98,
			ShippingAddress:   storeAddress(),
			EstimatedDelivery: ptr("22/12/2024"),
		},
	}
}
