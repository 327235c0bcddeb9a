package services

// Starter menu cloned into every new business at onboarding so the storefront
// is never empty. Prices in centavos.

type templateProduct struct {
	Category    string
	Name        string
	Description string
	Price       int64
	ImageURL    string
	PrepTime    string
}

type templateEntry struct {
	Name        string
	Description string
	SortOrder   int
}

type templatePriced struct {
	Name  string
	Price int64
}

var templateCategories = []templateEntry{
	{Name: "Lanches", Description: "Hambúrgueres e sanduíches artesanais", SortOrder: 1},
	{Name: "Bebidas", Description: "Refrigerantes, sucos e drinks", SortOrder: 2},
	{Name: "Acompanhamentos", Description: "Porções e complementos", SortOrder: 3},
	{Name: "Sobremesas", Description: "Doces e sobremesas especiais", SortOrder: 4},
}

var templateProducts = []templateProduct{
	{
		Category:    "Lanches",
		Name:        "Hambúrguer Clássico",
		Description: "Hambúrguer artesanal 180g, queijo cheddar, alface, tomate, cebola roxa e molho especial",
		Price:       2890,
		ImageURL:    "https://images.unsplash.com/photo-1568901346375-23c9450c58cd?w=400&h=300&fit=crop",
		PrepTime:    "15-20 min",
	},
	{
		Category:    "Lanches",
		Name:        "Bacon Burger",
		Description: "Duplo hambúrguer 160g cada, bacon crocante, queijo cheddar duplo, cebola caramelizada",
		Price:       3590,
		ImageURL:    "https://images.unsplash.com/photo-1553979459-d2229ba7433a?w=400&h=300&fit=crop",
		PrepTime:    "20-25 min",
	},
	{
		Category:    "Lanches",
		Name:        "Frango Crispy",
		Description: "Frango empanado crocante, queijo suíço, alface americana, tomate e maionese temperada",
		Price:       2690,
		ImageURL:    "https://images.unsplash.com/photo-1606755962773-d324e9a13086?w=400&h=300&fit=crop",
		PrepTime:    "15-18 min",
	},
	{
		Category:    "Bebidas",
		Name:        "Coca-Cola 350ml",
		Description: "Refrigerante gelado",
		Price:       590,
		ImageURL:    "https://images.unsplash.com/photo-1629203851122-3726ecdf080e?w=400&h=300&fit=crop",
		PrepTime:    "2 min",
	},
	{
		Category:    "Bebidas",
		Name:        "Suco Natural",
		Description: "Suco de laranja natural 400ml",
		Price:       890,
		ImageURL:    "https://images.unsplash.com/photo-1621506289937-a8e4df240d0b?w=400&h=300&fit=crop",
		PrepTime:    "3-5 min",
	},
	{
		Category:    "Acompanhamentos",
		Name:        "Batata Frita",
		Description: "Porção de batata frita crocante com sal e orégano",
		Price:       1490,
		ImageURL:    "https://images.unsplash.com/photo-1573080496219-bb080dd4f877?w=400&h=300&fit=crop",
		PrepTime:    "10-12 min",
	},
	{
		Category:    "Sobremesas",
		Name:        "Brownie com Sorvete",
		Description: "Brownie de chocolate quente com bola de sorvete de creme",
		Price:       1690,
		ImageURL:    "https://images.unsplash.com/photo-1564355808539-22fda35bed7e?w=400&h=300&fit=crop",
		PrepTime:    "8-10 min",
	},
}

var templateAdditionals = []templatePriced{
	{Name: "Bacon Extra", Price: 400},
	{Name: "Queijo Extra", Price: 300},
	{Name: "Ovo", Price: 250},
	{Name: "Cebola Caramelizada", Price: 350},
	{Name: "Molho Especial", Price: 200},
}

var templateDeliveryAreas = []templatePriced{
	{Name: "Centro", Price: 500},
	{Name: "Zona Norte", Price: 700},
	{Name: "Zona Sul", Price: 800},
}

var templatePaymentMethods = []string{"Dinheiro", "Cartão de Crédito", "Cartão de Débito", "PIX"}
