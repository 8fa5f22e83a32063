// Seeds the database with sample data. Safe to run repeatedly: existing
// records are looked up before inserting.
package main

import (
	"time"

	"emunah-backend/internal/model"
	"emunah-backend/internal/numbering"
	"emunah-backend/pkg/config"
	"emunah-backend/pkg/database"
	"emunah-backend/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.Load("emunah-backend")
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}
	if err := logger.InitLogger(cfg); err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	log := logger.GetLogger()

	db, err := database.InitDB(&cfg.DB)
	if err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	if err := database.MigrateModels(
		&model.Client{},
		&model.Supplier{},
		&model.Product{},
		&model.Print{},
		&model.Quote{},
		&model.Order{},
		&model.Transaction{},
	); err != nil {
		log.Fatal("Failed to run migrations", zap.Error(err))
	}

	log.Info("Seeding database...")
	seedClients(db, log)
	seedSuppliers(db, log)
	seedProducts(db, log)
	seedPrints(db, log)
	seedQuotesOrdersTransactions(db, log)
	log.Info("Seed completed")
}

func seedClients(db *gorm.DB, log *zap.Logger) {
	clients := []model.Client{
		{Name: "Igreja Batista Central", Contact: "Pastor João Silva", Email: "contato@ibcentral.org", Phone: "(11) 98765-4321", Address: "Rua das Flores, 123 - São Paulo/SP"},
		{Name: "Comunidade Vida Nova", Contact: "Pr. Carlos Santos", Email: "carlos@vidanova.org", Phone: "(11) 97654-3210", Address: "Av. Brasil, 500 - Campinas/SP"},
		{Name: "Ministério Louvor e Adoração", Contact: "Líder Maria Costa", Email: "maria@louvor.com", Phone: "(21) 98888-7777", Address: "Rua da Paz, 45 - Rio de Janeiro/RJ"},
		{Name: "Grupo de Jovens Aliança", Contact: "Diego Oliveira", Email: "diego@alianca.org", Phone: "(31) 99999-8888", Address: "Av. Contorno, 200 - Belo Horizonte/MG"},
	}
	for _, client := range clients {
		var count int64
		db.Model(&model.Client{}).Where("email = ?", client.Email).Count(&count)
		if count == 0 {
			if err := db.Create(&client).Error; err != nil {
				log.Warn("Failed to seed client", zap.String("name", client.Name), zap.Error(err))
			}
		}
	}
}

func seedSuppliers(db *gorm.DB, log *zap.Logger) {
	suppliers := []model.Supplier{
		{Name: "Malhas Premium SP", Contact: "Roberto Andrade", Email: "roberto@malhaspremium.com", Phone: "(11) 3456-7890", Category: "Tecidos", Status: model.SupplierActive, Rating: 5, ProductionTimeDays: 5},
		{Name: "Silk Master", Contact: "Ana Paula", Email: "ana@silkmaster.com.br", Phone: "(11) 2345-6789", Category: "Estamparia", Status: model.SupplierActive, Rating: 5, ProductionTimeDays: 3},
		{Name: "Costura Express", Contact: "José Lima", Email: "jose@costuraexpress.com", Phone: "(11) 3333-4444", Category: "Confecção", Status: model.SupplierActive, Rating: 4, ProductionTimeDays: 7},
		{Name: "Bordados Finos", Contact: "Clara Mendes", Email: "clara@bordadosfinos.com", Phone: "(11) 5555-6666", Category: "Acabamentos", Status: model.SupplierActive, Rating: 5, ProductionTimeDays: 4},
	}
	for _, supplier := range suppliers {
		var count int64
		db.Model(&model.Supplier{}).Where("email = ?", supplier.Email).Count(&count)
		if count == 0 {
			if err := db.Create(&supplier).Error; err != nil {
				log.Warn("Failed to seed supplier", zap.String("name", supplier.Name), zap.Error(err))
			}
		}
	}
}

func seedProducts(db *gorm.DB, log *zap.Logger) {
	products := []model.Product{
		{Name: "Camiseta Básica", SKU: "CAM-BAS-001", Category: "Camisetas", Price: 35.00, Cost: 18.00, Stock: 120, Colors: model.StringList{"Branco", "Preto", "Azul"}, Sizes: model.StringList{"P", "M", "G", "GG"}},
		{Name: "Baby Look Premium", SKU: "BBL-PRE-001", Category: "Baby Look", Price: 42.00, Cost: 22.00, Stock: 80, Colors: model.StringList{"Branco", "Rosa"}, Sizes: model.StringList{"P", "M", "G"}},
		{Name: "Moletom Canguru", SKU: "MOL-CAN-001", Category: "Inverno", Price: 95.00, Cost: 55.00, Stock: 40, Colors: model.StringList{"Cinza", "Preto"}, Sizes: model.StringList{"M", "G", "GG"}},
	}
	for _, product := range products {
		var count int64
		db.Model(&model.Product{}).Where("sku = ?", product.SKU).Count(&count)
		if count == 0 {
			if err := db.Create(&product).Error; err != nil {
				log.Warn("Failed to seed product", zap.String("sku", product.SKU), zap.Error(err))
			}
		}
	}
}

func seedPrints(db *gorm.DB, log *zap.Logger) {
	prints := []model.Print{
		{Name: "Leão de Judá", Technique: "Silk Screen", Colors: "2", ImageType: model.PrintImageURL, Tags: model.StringList{"leão", "gospel"}},
		{Name: "Fé Sobre Medo", Technique: "DTG", Colors: "Full Color", ImageType: model.PrintImageURL, Tags: model.StringList{"fé", "tipografia"}},
	}
	for _, printItem := range prints {
		var count int64
		db.Model(&model.Print{}).Where("name = ?", printItem.Name).Count(&count)
		if count == 0 {
			if err := db.Create(&printItem).Error; err != nil {
				log.Warn("Failed to seed print", zap.String("name", printItem.Name), zap.Error(err))
			}
		}
	}
}

func seedQuotesOrdersTransactions(db *gorm.DB, log *zap.Logger) {
	var quoteCount int64
	db.Model(&model.Quote{}).Count(&quoteCount)
	if quoteCount > 0 {
		return
	}

	var client model.Client
	if err := db.First(&client).Error; err != nil {
		log.Warn("No clients available, skipping quotes/orders/transactions")
		return
	}

	numbers := numbering.NewGenerator()

	quote := model.Quote{
		ClientID:     &client.ID,
		ItemsSummary: "50x Camiseta Básica com estampa Leão de Judá",
		TotalValue:   1750.00,
		Status:       model.QuotePending,
	}
	if _, err := numbers.IssueQuoteNumber(db, func(number string) error {
		quote.QuoteNumber = number
		return db.Create(&quote).Error
	}); err != nil {
		log.Warn("Failed to seed quote", zap.Error(err))
		return
	}

	delivery := time.Now().AddDate(0, 0, 14)
	order := model.Order{
		QuoteID:      &quote.ID,
		ClientID:     client.ID,
		ItemsSummary: quote.ItemsSummary,
		TotalValue:   quote.TotalValue,
		DeliveryDate: &delivery,
		Stage:        model.StageCutting,
		Progress:     20,
		Priority:     model.PriorityNormal,
	}
	if _, err := numbers.IssueOrderNumber(db, func(number string) error {
		order.OrderNumber = number
		return db.Create(&order).Error
	}); err != nil {
		log.Warn("Failed to seed order", zap.Error(err))
		return
	}

	transactions := []model.Transaction{
		{OrderID: &order.ID, Description: "Entrada pedido " + order.OrderNumber, Category: "Vendas", Type: model.TransactionIncome, Amount: 875.00, Status: model.TransactionConfirmed, TransactionDate: time.Now().AddDate(0, 0, -2)},
		{Description: "Compra de malha", Category: "Matéria Prima", Type: model.TransactionExpense, Amount: 420.00, Status: model.TransactionConfirmed, TransactionDate: time.Now().AddDate(0, 0, -1)},
		{Description: "Aluguel do ateliê", Category: "Despesas Fixas", Type: model.TransactionExpense, Amount: 1200.00, Status: model.TransactionPending, TransactionDate: time.Now()},
	}
	for i := range transactions {
		t := &transactions[i]
		if _, err := numbers.IssueTransactionNumber(db, func(number string) error {
			t.TransactionNumber = number
			return db.Create(t).Error
		}); err != nil {
			log.Warn("Failed to seed transaction", zap.Error(err))
		}
	}
}
