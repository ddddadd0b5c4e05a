// Package config loads simulation tuning from a YAML file with environment
// overrides. Defaults reproduce the shipped balance of the game.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all tunable simulation parameters.
type Config struct {
	Store struct {
		Name          string  `yaml:"name"`
		Niche         string  `yaml:"niche"`
		StartingCash  float64 `yaml:"starting_cash"`
		StartingStock int     `yaml:"starting_stock"`
		StartingPrice int     `yaml:"starting_price"`
	} `yaml:"store"`

	Economy struct {
		BaseVisitsMin      int     `yaml:"base_visits_min"`
		BaseVisitsMax      int     `yaml:"base_visits_max"`
		BaseConversionRate float64 `yaml:"base_conversion_rate"`
		ReferencePrice     int     `yaml:"reference_price"`
		PriceElasticity    float64 `yaml:"price_elasticity"`
		DailyFixedCost     float64 `yaml:"daily_fixed_cost"`
		DebtInterestRate   float64 `yaml:"debt_interest_rate"`

		StockOrderCost   float64 `yaml:"stock_order_cost"`
		StockOrderAmount int     `yaml:"stock_order_amount"`

		FastSupplierLeadDays    int     `yaml:"fast_supplier_lead_days"`
		CheapSupplierLeadDays   int     `yaml:"cheap_supplier_lead_days"`
		FastSupplierRepBonus    float64 `yaml:"fast_supplier_rep_bonus"`
		CheapSupplierRepPenalty float64 `yaml:"cheap_supplier_rep_penalty"`

		LostOrderPenalty float64 `yaml:"lost_order_penalty"`
	} `yaml:"economy"`

	Capacity struct {
		Base             int       `yaml:"base"`
		PerExpansion     int       `yaml:"per_expansion"`
		ExpansionCosts   []float64 `yaml:"expansion_costs"`
		EmployeeSalary   float64   `yaml:"employee_salary"`
		EmployeeCapacity int       `yaml:"employee_capacity"`
	} `yaml:"capacity"`

	Marketing struct {
		CampaignCost       float64 `yaml:"campaign_cost"`
		CampaignDays       int     `yaml:"campaign_days"`
		CampaignMultiplier float64 `yaml:"campaign_multiplier"`
		ViralProbability   float64 `yaml:"viral_probability"`
		ViralCooldownDays  int     `yaml:"viral_cooldown_days"`
		ViralDays          int     `yaml:"viral_days"`
		ViralMultiplierMin float64 `yaml:"viral_multiplier_min"`
		ViralMultiplierMax float64 `yaml:"viral_multiplier_max"`
		MultiplierCap      float64 `yaml:"multiplier_cap"`
	} `yaml:"marketing"`

	Events struct {
		DailyProbability float64 `yaml:"daily_probability"`
		MinGapDays       int     `yaml:"min_gap_days"`
	} `yaml:"events"`

	StockBot struct {
		InstallCost float64 `yaml:"install_cost"`
		Threshold   int     `yaml:"threshold"`
	} `yaml:"stockbot"`

	Schedule struct {
		SecondsPerDay int `yaml:"seconds_per_day"`
	} `yaml:"schedule"`

	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides and defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("STOREDESK_STORE_NAME"); v != "" {
		cfg.Store.Name = v
	}
	if v := os.Getenv("STOREDESK_SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("STOREDESK_SECONDS_PER_DAY"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Schedule.SecondsPerDay = n
		}
	}

	cfg.applyDefaults()
	return cfg, nil
}

// Default returns the shipped balance without touching disk.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Store.Name == "" {
		c.Store.Name = "My Store"
	}
	if c.Store.Niche == "" {
		c.Store.Niche = "Electronics"
	}
	if c.Store.StartingCash == 0 {
		c.Store.StartingCash = 500
	}
	if c.Store.StartingStock == 0 {
		c.Store.StartingStock = 50
	}
	if c.Store.StartingPrice == 0 {
		c.Store.StartingPrice = 15
	}

	if c.Economy.BaseVisitsMin == 0 {
		c.Economy.BaseVisitsMin = 120
	}
	if c.Economy.BaseVisitsMax == 0 {
		c.Economy.BaseVisitsMax = 220
	}
	if c.Economy.BaseConversionRate == 0 {
		c.Economy.BaseConversionRate = 0.06
	}
	if c.Economy.ReferencePrice == 0 {
		c.Economy.ReferencePrice = 15
	}
	if c.Economy.PriceElasticity == 0 {
		c.Economy.PriceElasticity = 0.0015
	}
	if c.Economy.DailyFixedCost == 0 {
		c.Economy.DailyFixedCost = 30
	}
	if c.Economy.DebtInterestRate == 0 {
		c.Economy.DebtInterestRate = 0.01
	}
	if c.Economy.StockOrderCost == 0 {
		c.Economy.StockOrderCost = 100
	}
	if c.Economy.StockOrderAmount == 0 {
		c.Economy.StockOrderAmount = 50
	}
	if c.Economy.FastSupplierLeadDays == 0 {
		c.Economy.FastSupplierLeadDays = 1
	}
	if c.Economy.CheapSupplierLeadDays == 0 {
		c.Economy.CheapSupplierLeadDays = 2
	}
	if c.Economy.FastSupplierRepBonus == 0 {
		c.Economy.FastSupplierRepBonus = 0.02
	}
	if c.Economy.CheapSupplierRepPenalty == 0 {
		c.Economy.CheapSupplierRepPenalty = -0.01
	}
	if c.Economy.LostOrderPenalty == 0 {
		c.Economy.LostOrderPenalty = 0.01
	}

	if c.Capacity.Base == 0 {
		c.Capacity.Base = 20
	}
	if c.Capacity.PerExpansion == 0 {
		c.Capacity.PerExpansion = 20
	}
	if len(c.Capacity.ExpansionCosts) == 0 {
		c.Capacity.ExpansionCosts = []float64{500, 900}
	}
	if c.Capacity.EmployeeSalary == 0 {
		c.Capacity.EmployeeSalary = 30
	}
	if c.Capacity.EmployeeCapacity == 0 {
		c.Capacity.EmployeeCapacity = 15
	}

	if c.Marketing.CampaignCost == 0 {
		c.Marketing.CampaignCost = 200
	}
	if c.Marketing.CampaignDays == 0 {
		c.Marketing.CampaignDays = 4
	}
	if c.Marketing.CampaignMultiplier == 0 {
		c.Marketing.CampaignMultiplier = 2.5
	}
	if c.Marketing.ViralProbability == 0 {
		c.Marketing.ViralProbability = 0.08
	}
	if c.Marketing.ViralCooldownDays == 0 {
		c.Marketing.ViralCooldownDays = 7
	}
	if c.Marketing.ViralDays == 0 {
		c.Marketing.ViralDays = 2
	}
	if c.Marketing.ViralMultiplierMin == 0 {
		c.Marketing.ViralMultiplierMin = 3.0
	}
	if c.Marketing.ViralMultiplierMax == 0 {
		c.Marketing.ViralMultiplierMax = 4.0
	}
	if c.Marketing.MultiplierCap == 0 {
		c.Marketing.MultiplierCap = 6.0
	}

	if c.Events.DailyProbability == 0 {
		c.Events.DailyProbability = 0.2
	}
	if c.Events.MinGapDays == 0 {
		c.Events.MinGapDays = 2
	}

	if c.StockBot.InstallCost == 0 {
		c.StockBot.InstallCost = 250
	}
	if c.StockBot.Threshold == 0 {
		c.StockBot.Threshold = 20
	}

	if c.Schedule.SecondsPerDay == 0 {
		c.Schedule.SecondsPerDay = 20
	}
	if c.Database.SQLitePath == "" {
		c.Database.SQLitePath = "data/storedesk.db"
	}
}

// Validate checks that loaded values form a playable economy.
func (c *Config) Validate() error {
	if c.Economy.BaseVisitsMin > c.Economy.BaseVisitsMax {
		return fmt.Errorf("economy.base_visits_min exceeds base_visits_max")
	}
	if c.Economy.BaseConversionRate <= 0 {
		return fmt.Errorf("economy.base_conversion_rate must be positive")
	}
	if c.Store.StartingPrice < 1 {
		return fmt.Errorf("store.starting_price must be at least 1")
	}
	if c.Marketing.ViralMultiplierMin > c.Marketing.ViralMultiplierMax {
		return fmt.Errorf("marketing.viral_multiplier_min exceeds viral_multiplier_max")
	}
	if c.Schedule.SecondsPerDay < 1 {
		return fmt.Errorf("schedule.seconds_per_day must be at least 1")
	}
	return nil
}
