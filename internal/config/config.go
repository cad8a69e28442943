// =============================================================================
// Order Print Pipeline - Configuration Module
// =============================================================================
//
// This module is responsible for loading and managing all configuration files.
// It handles both the main application configuration and vendor-specific
// price books.
//
// CONFIGURATION FILES:
//   1. Main Config (config.yaml): Global application settings
//   2. Price Books (pricebooks/*.yaml): Vendor-specific pricing rules
//
// ARCHITECTURE:
//   The configuration system is designed to be:
//   - Modular: Each vendor has its own price book file
//   - Extensible: New vendors can be added without code changes
//   - Validated: All configurations are validated on load
//
// Price tables are deliberately configuration data, not code: the same
// pipeline serves multiple vendors whose catalogs and shipping terms differ.
//
// =============================================================================

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// =============================================================================
// MAIN CONFIGURATION STRUCTURE
// =============================================================================

// MainConfig holds the global application configuration.
// This is loaded from the main config.yaml file.
type MainConfig struct {
	// =========================================================================
	// DIRECTORY SETTINGS
	// =========================================================================

	// OutputDir is the directory where generated page manifests are placed.
	// Default: "./output"
	OutputDir string `yaml:"output_dir"`

	// InputArchiveDir is the directory where processed input files are moved.
	// Files are only moved here after a successful run.
	// Default: "./input_archive"
	InputArchiveDir string `yaml:"input_archive_dir"`

	// PriceBooksDir is the directory containing vendor price book files.
	// Each YAML file in this directory represents one vendor's price book.
	// Default: "./pricebooks"
	PriceBooksDir string `yaml:"price_books_dir"`

	// =========================================================================
	// LOGGING SETTINGS
	// =========================================================================

	// LogLevel controls the verbosity of logging.
	// Valid values: "debug", "info", "warn", "error"
	// Default: "info"
	LogLevel string `yaml:"log_level"`

	// =========================================================================
	// INGESTION SETTINGS
	// =========================================================================

	// MinRequiredCells is the minimum number of populated cells a data row
	// must have to be accepted. Rows below this threshold are dropped
	// silently; spreadsheet exports routinely carry trailing junk rows.
	// Default: 3
	MinRequiredCells int `yaml:"min_required_cells"`

	// =========================================================================
	// DOCUMENT SETTINGS
	// =========================================================================

	// DefaultLabelSize is the label sheet capacity used when the caller does
	// not select one. Valid values: 6 (3x2 grid) or 8 (4x2 grid).
	// Default: 8
	DefaultLabelSize int `yaml:"default_label_size"`

	// DefaultStyle is the invoice style (price book) used when the caller
	// does not select one.
	// Default: "todaytrend"
	DefaultStyle string `yaml:"default_style"`
}

// =============================================================================
// PRICE BOOK STRUCTURE
// =============================================================================

// PriceBook holds the pricing rules for a single vendor / invoice style.
// Each price book is loaded from its own YAML file.
type PriceBook struct {
	// Vendor is the vendor key this book belongs to (e.g. "todaytrend").
	// Defaults to the file name without extension when omitted.
	Vendor string `yaml:"vendor"`

	// Prices maps product codes to unit prices in whole currency units.
	Prices map[string]int `yaml:"prices"`

	// DefaultPrice is the unit price applied to codes missing from Prices.
	// Unrecognized codes are priced, not rejected; the field validator is
	// responsible for rejecting malformed codes.
	DefaultPrice int `yaml:"default_price"`

	// ShippingCost is the fixed shipping charge per document for this
	// vendor's invoice style. Zero is a valid configuration.
	ShippingCost int `yaml:"shipping_cost"`

	// InvoicePrefix is the literal prefix for generated fallback invoice
	// numbers (e.g. "INV-").
	InvoicePrefix string `yaml:"invoice_prefix"`

	// CodePattern is the regular expression a product code must match for
	// this vendor, without anchors (e.g. `SB\d{3}`).
	CodePattern string `yaml:"code_pattern"`
}

// =============================================================================
// MAIN CONFIG LOADING
// =============================================================================

// LoadMainConfig loads the main configuration from the given path.
//
// PARAMETERS:
//   - path: The path to the main config YAML file.
//
// RETURNS:
//   - A pointer to the MainConfig with defaults applied.
//   - An error if the file exists but cannot be read or parsed.
//
// A missing config file is not an error: the application runs with defaults
// so a bare checkout works without any setup.
func LoadMainConfig(path string) (*MainConfig, error) {
	cfg := &MainConfig{}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			applyMainDefaults(cfg)
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyMainDefaults(cfg)

	if err := validateMainConfig(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration in %s: %w", path, err)
	}

	return cfg, nil
}

// applyMainDefaults fills in default values for unset fields.
func applyMainDefaults(cfg *MainConfig) {
	if cfg.OutputDir == "" {
		cfg.OutputDir = "./output"
	}
	if cfg.InputArchiveDir == "" {
		cfg.InputArchiveDir = "./input_archive"
	}
	if cfg.PriceBooksDir == "" {
		cfg.PriceBooksDir = "./pricebooks"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.MinRequiredCells == 0 {
		cfg.MinRequiredCells = 3
	}
	if cfg.DefaultLabelSize == 0 {
		cfg.DefaultLabelSize = 8
	}
	if cfg.DefaultStyle == "" {
		cfg.DefaultStyle = "todaytrend"
	}
}

// validateMainConfig checks the loaded configuration for invalid values.
func validateMainConfig(cfg *MainConfig) error {
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level must be one of debug/info/warn/error, got %q", cfg.LogLevel)
	}

	if cfg.DefaultLabelSize != 6 && cfg.DefaultLabelSize != 8 {
		return fmt.Errorf("default_label_size must be 6 or 8, got %d", cfg.DefaultLabelSize)
	}

	if cfg.MinRequiredCells < 1 {
		return fmt.Errorf("min_required_cells must be at least 1, got %d", cfg.MinRequiredCells)
	}

	return nil
}

// =============================================================================
// PRICE BOOK LOADING
// =============================================================================

// LoadPriceBooks loads all vendor price books from the given directory.
//
// PARAMETERS:
//   - dir: The directory containing price book YAML files.
//
// RETURNS:
//   - A map of price books keyed by vendor name.
//   - An error if a price book file cannot be read or parsed.
//
// If the directory does not exist, the built-in price books are returned so
// the pipeline works out of the box; an on-disk book for the same vendor
// overrides the built-in one.
func LoadPriceBooks(dir string) (map[string]*PriceBook, error) {
	books := BuiltinPriceBooks()

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return books, nil
		}
		return nil, fmt.Errorf("failed to read price books directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		book, err := loadPriceBook(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load price book %s: %w", entry.Name(), err)
		}

		books[book.Vendor] = book
	}

	return books, nil
}

// loadPriceBook loads and validates a single price book file.
func loadPriceBook(path string) (*PriceBook, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	book := &PriceBook{}
	if err := yaml.Unmarshal(data, book); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	// Default the vendor key to the file name without extension.
	if book.Vendor == "" {
		base := filepath.Base(path)
		book.Vendor = strings.TrimSuffix(base, filepath.Ext(base))
	}

	applyBookDefaults(book)

	if book.DefaultPrice < 0 {
		return nil, fmt.Errorf("default_price must be non-negative, got %d", book.DefaultPrice)
	}
	if book.ShippingCost < 0 {
		return nil, fmt.Errorf("shipping_cost must be non-negative, got %d", book.ShippingCost)
	}
	for code, price := range book.Prices {
		if price < 0 {
			return nil, fmt.Errorf("price for code %s must be non-negative, got %d", code, price)
		}
	}

	return book, nil
}

// applyBookDefaults fills in default values for unset price book fields.
func applyBookDefaults(book *PriceBook) {
	if book.Prices == nil {
		book.Prices = map[string]int{}
	}
	if book.InvoicePrefix == "" {
		book.InvoicePrefix = "INV-"
	}
	if book.CodePattern == "" {
		book.CodePattern = `SB\d{3}`
	}
}

// =============================================================================
// PRICE BOOK METHODS
// =============================================================================

// PriceFor returns the unit price for a product code.
// Unrecognized codes fall back to the book's default price.
func (b *PriceBook) PriceFor(code string) int {
	if price, ok := b.Prices[code]; ok {
		return price
	}
	return b.DefaultPrice
}

// =============================================================================
// BUILT-IN PRICE BOOKS
// =============================================================================

// BuiltinPriceBooks returns the shipped vendor price books.
// These mirror the two invoice styles the business currently runs:
//   - "todaytrend": flat catalog, shipping charged per invoice
//   - "seetar": mixed catalog, free shipping
func BuiltinPriceBooks() map[string]*PriceBook {
	return map[string]*PriceBook{
		"todaytrend": {
			Vendor: "todaytrend",
			Prices: map[string]int{
				"SB101": 3000, "SB102": 3000, "SB103": 3000, "SB104": 3000,
				"SB105": 3000, "SB106": 3000, "SB107": 3000, "SB108": 3000,
				"SB109": 3000, "SB110": 3000, "SB201": 3000, "SB202": 3000,
				"SB203": 3000, "SB205": 3000,
			},
			DefaultPrice:  2000,
			ShippingCost:  100,
			InvoicePrefix: "INV-",
			CodePattern:   `SB\d{3}`,
		},
		"seetar": {
			Vendor: "seetar",
			Prices: map[string]int{
				"SB101": 2200, "SB102": 2200, "SB103": 3500,
				"BB101": 1800, "BB102": 2200, "BB103": 2000,
				"MH101": 3200, "MH102": 3200, "MH103": 3200,
			},
			DefaultPrice:  2200,
			ShippingCost:  0,
			InvoicePrefix: "INV-",
			CodePattern:   `[A-Z]{2}\d{3}`,
		},
	}
}
