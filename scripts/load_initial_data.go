package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"brokerage-backoffice/internal/config"
	"brokerage-backoffice/internal/database"
	"brokerage-backoffice/internal/database/models"
	"brokerage-backoffice/internal/repository"
	"brokerage-backoffice/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match the seed YAML files
type AgentData struct {
	FullName         string `yaml:"full_name"`
	Email            string `yaml:"email"`
	Password         string `yaml:"password,omitempty"`
	AgentType        string `yaml:"agent_type"`
	SponsorEmail     string `yaml:"sponsor_email,omitempty"`
	CapType          string `yaml:"cap_type,omitempty"`
	AnniversaryDate  string `yaml:"anniversary_date"`
	CareerSalesCount int    `yaml:"career_sales_count"`
}

type TransactionData struct {
	AgentEmail               string  `yaml:"agent_email"`
	PropertyAddress          string  `yaml:"property_address"`
	SaleAmount               float64 `yaml:"sale_amount"`
	CommissionPercentage     float64 `yaml:"commission_percentage"`
	IsCompanyLead            bool    `yaml:"is_company_lead"`
	ComplianceFeePaidByAgent bool    `yaml:"compliance_fee_paid_by_agent"`
	TransactionDate          string  `yaml:"transaction_date"`
}

type AgentsFile struct {
	Agents []AgentData `yaml:"agents"`
}

type TransactionsFile struct {
	Transactions []TransactionData `yaml:"transactions"`
}

func main() {
	log.Println("Loading initial data from YAML files...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := loadDataFromYAMLFiles(db, cfg, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("Initial data loaded successfully")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, cfg *config.Config, dataDir string) error {
	agents, err := loadAgentsFile(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load agents: %w", err)
	}

	transactions, err := loadTransactionsFile(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load transactions: %w", err)
	}

	if err := seedAgents(db, agents); err != nil {
		return err
	}
	return seedTransactions(db, cfg, transactions)
}

func loadAgentsFile(dataDir string) ([]AgentData, error) {
	raw, err := os.ReadFile(filepath.Join(dataDir, "agents.yaml"))
	if err != nil {
		return nil, err
	}
	var file AgentsFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, err
	}
	return file.Agents, nil
}

func loadTransactionsFile(dataDir string) ([]TransactionData, error) {
	raw, err := os.ReadFile(filepath.Join(dataDir, "transactions.yaml"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var file TransactionsFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, err
	}
	return file.Transactions, nil
}

// seedAgents creates agents in file order so sponsors can be referenced by
// email from earlier entries.
func seedAgents(db *gorm.DB, agents []AgentData) error {
	for _, data := range agents {
		var existing models.Agent
		if err := db.Where("email = ?", data.Email).First(&existing).Error; err == nil {
			log.Printf("Agent %s already exists, skipping", data.Email)
			continue
		}

		anniversary, err := time.Parse("2006-01-02", data.AnniversaryDate)
		if err != nil {
			return fmt.Errorf("agent %s: invalid anniversary_date: %w", data.Email, err)
		}

		agent := models.Agent{
			FullName:         data.FullName,
			Email:            data.Email,
			AgentType:        models.AgentType(data.AgentType),
			AnniversaryDate:  anniversary,
			CareerSalesCount: data.CareerSalesCount,
			TotalGCIYTD:      decimal.Zero,
			IsActive:         true,
		}

		if !agent.AgentType.IsValid() {
			return fmt.Errorf("agent %s: invalid agent_type %q", data.Email, data.AgentType)
		}

		if data.Password != "" {
			hash, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
			if err != nil {
				return fmt.Errorf("agent %s: hash password: %w", data.Email, err)
			}
			agent.PasswordHash = string(hash)
		}

		if data.CapType != "" {
			capType := models.CapType(data.CapType)
			if !capType.IsValid() {
				return fmt.Errorf("agent %s: invalid cap_type %q", data.Email, data.CapType)
			}
			agent.CapType = &capType
		}

		if data.SponsorEmail != "" {
			var sponsor models.Agent
			if err := db.Where("email = ?", data.SponsorEmail).First(&sponsor).Error; err != nil {
				return fmt.Errorf("agent %s: sponsor %s not found (order agents so sponsors come first)", data.Email, data.SponsorEmail)
			}
			agent.SponsorID = &sponsor.ID
		}

		if err := db.Create(&agent).Error; err != nil {
			return fmt.Errorf("agent %s: %w", data.Email, err)
		}
		log.Printf("Created agent %s (%s)", agent.FullName, agent.Email)
	}
	return nil
}

// seedTransactions records transactions through the service layer so commission
// splits and revenue share payouts are generated exactly as in production.
func seedTransactions(db *gorm.DB, cfg *config.Config, transactions []TransactionData) error {
	agentRepo := repository.NewAgentRepository(db)
	transactionRepo := repository.NewTransactionRepository(db)
	revenueShareRepo := repository.NewRevenueShareRepository(db)
	auditLogRepo := repository.NewAuditLogRepository(db)
	webhookSettingRepo := repository.NewWebhookSettingRepository(db)

	auditService := service.NewAuditService(auditLogRepo)
	dispatcher := service.NewWebhookDispatcher(webhookSettingRepo, cfg)
	engine := service.NewRevenueShareEngine(agentRepo, revenueShareRepo)
	transactionService := service.NewTransactionService(db, transactionRepo, agentRepo, revenueShareRepo, engine, auditService, dispatcher, validator.New())

	for _, data := range transactions {
		var agent models.Agent
		if err := db.Where("email = ?", data.AgentEmail).First(&agent).Error; err != nil {
			return fmt.Errorf("transaction at %s: agent %s not found", data.PropertyAddress, data.AgentEmail)
		}

		txnDate, err := time.Parse("2006-01-02", data.TransactionDate)
		if err != nil {
			return fmt.Errorf("transaction at %s: invalid transaction_date: %w", data.PropertyAddress, err)
		}

		feePaidByAgent := data.ComplianceFeePaidByAgent
		req := &service.CreateTransactionRequest{
			AgentID:                  agent.ID,
			PropertyAddress:          data.PropertyAddress,
			SaleAmount:               decimal.NewFromFloat(data.SaleAmount),
			CommissionPercentage:     decimal.NewFromFloat(data.CommissionPercentage),
			IsCompanyLead:            data.IsCompanyLead,
			ComplianceFeePaidByAgent: &feePaidByAgent,
			TransactionDate:          txnDate,
		}

		txn, err := transactionService.Create(req)
		if err != nil {
			return fmt.Errorf("transaction at %s: %w", data.PropertyAddress, err)
		}
		log.Printf("Created transaction at %s (company GCI %s)", data.PropertyAddress, txn.CompanyGCI)
	}
	return nil
}
