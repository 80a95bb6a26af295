package repositories

import (
	"fmt"

	"gatequote/internal/models"
)

func intPtr(v int) *int { return &v }

// DefaultCategories returns the built-in barrier gate system categories in
// catalog order.
func DefaultCategories() []models.Category {
	return []models.Category{
		{ID: "controller", Name: "Access Controller", Description: "Control systems for managing barrier gate access", Required: true},
		{ID: "barrier", Name: "Barrier Gate", Description: "Physical barriers for vehicle entry and exit points", Required: true},
		{ID: "reader", Name: "Input Reader/ANPR", Description: "Readers and recognition systems for vehicle identification", Required: true},
		{ID: "protection", Name: "Lightning/Surge Protection", Description: "Protection devices for electrical and network equipment", Required: true},
		{ID: "installation", Name: "Installation & Services", Description: "Installation, cabling, civil works and implementation services", Required: true},
		{ID: "detector", Name: "Vehicle Detectors", Description: "Sensors for vehicle detection and anti-smash protection"},
		{ID: "button", Name: "Control Buttons", Description: "Manual control buttons for barriers"},
		{ID: "accessCard", Name: "Access Cards", Description: "RFID access cards for vehicle identification"},
		{ID: "other", Name: "Other Equipment", Description: "Additional equipment and accessories", Required: true},
	}
}

// DefaultProducts returns the built-in product catalog in catalog order.
func DefaultProducts() []models.Product {
	return []models.Product{
		{
			ID:          "controller-board",
			Name:        "Baycons Access Controller Board",
			Description: "Advanced controller board with multiple connectivity options",
			Details: []string{
				"MCU: ESP 32",
				"Power Input: 12 V or POE (30 W)",
				"Connectivity: 2 x Wiegand, 2 x Dry Contact, 2 x Powered Relay",
				"1 x 100 M Ethernet, 1 x Micro SD Slot, 1 x RS 485",
				"2 x Digital Inputs, 1 x Serial Port, 1 x I2C Port",
				"Wireless: WiFi, Bluetooth",
				"Suitable for standalone controllers",
			},
			UnitPrice:       900,
			DefaultQuantity: 1,
			MinQuantity:     1,
			Required:        true,
			CategoryID:      "controller",
		},
		{
			ID:          "local-server",
			Name:        "Baycons Local Access Server",
			Description: "Local server to interface with controller board for access control operations",
			Details: []string{
				"CPU: Intel i3",
				"RAM: 4 GB DDR4",
				"Storage: 256 GB SSD",
				"OS: Ubuntu Server",
				"LAN: 2 x Gigabit Ethernet",
				"I/O Ports: USB, HDMI/VGA, Serial (if needed)",
				"Design: Fanless Mini PC",
			},
			UnitPrice:       1200,
			DefaultQuantity: 1,
			MinQuantity:     1,
			Required:        true,
			CategoryID:      "controller",
		},
		{
			ID:          "barrier-gate",
			Name:        "ZKTeco Heavy Duty Barrier Gate",
			Description: "Robust barrier gate with advanced features for reliable operation",
			Details: []string{
				"Opening & Closing time: 3 s",
				"Boom type: Straight telescopic boom - Adjustable 4.5 m",
				"Supports Anti-Smash and Trigger automatic close",
				"430 Mhz Remote control included: < 30 meter distance",
				"Built-in LED light indicator in Chassis",
				"Power consumption: 120 W maximum; AC 220 V; 50 kg",
				"Warranty along contract period",
			},
			UnitPrice:       2400,
			DefaultQuantity: 4,
			MinQuantity:     1,
			CategoryID:      "barrier",
		},
		{
			ID:          "uhf-reader",
			Name:        "ZKTeco UHF Long Range Reader",
			Description: "Long-range RFID reader for vehicle identification",
			Details: []string{
				"Unencrypted/Encrypted Proximity RFID Reader (UHF)",
				"Comm Interface: Wiegand 26 (Default) / Wiegand 34 / RS 485 / USB",
				"Die-Cast Aluminium shell, Antenna panel with engineering plastics",
				"Frequency: 919 Mhz - 923 Mhz. MCMC/SIRIM approved with certificate",
				"Always Read (Default) / Trigger to Read. 7 Colours LED Light",
				"Reading distance 10 - 20 m (Actual scenario test is around 8 m)",
				"Dimensions: 445 x 445 x 68 mm. Working voltage: 9 ~ 15 VDC; 3.5 kg",
			},
			UnitPrice:       2420,
			DefaultQuantity: 2,
			CategoryID:      "reader",
		},
		{
			ID:          "anpr-system",
			Name:        "Auto Number Plate Recognition System",
			Description: "Camera system for automatic license plate recognition",
			Details: []string{
				"Full HD IP Camera (1080p) with IR",
				"Suitable for 3 – 10 meter detection range",
				"Real-time number plate recognition with high accuracy",
				"Whitelist/Blacklist management for access control",
				"Event logging with search and export capability",
			},
			UnitPrice:       3320,
			DefaultQuantity: 2,
			CategoryID:      "reader",
		},
		{
			ID:          "reader-pole",
			Name:        "Reader Pole",
			Description: "Mounting pole for readers and cameras",
			Details: []string{
				"Height: 1.8 meters; Material: Steel",
				"Base: Φ 200 mm, Pole: Φ 60 mm",
				"Color: White (Powder coated)",
				"Suitable for ANPR, UHF Reader, Multiple units of camera",
				"Weight: 5.5 kg",
			},
			UnitPrice:       280,
			DefaultQuantity: 4,
			CategoryID:      "reader",
		},
		{
			ID:          "ac-protector",
			Name:        "AC Lightning Protector",
			Description: "Protection module for power AC lines",
			Details: []string{
				"Module for Power AC",
				"3-core screw terminals in/out",
				"Lifetime replacement exchange; burnt unit can be replaced",
			},
			UnitPrice:       100,
			DefaultQuantity: 4,
			CategoryID:      "protection",
		},
		{
			ID:          "data-protector",
			Name:        "Data Network Protector (Readers)",
			Description: "Protection module for network cables",
			Details: []string{
				"Module for LAN cable (10/100/1000 Mbps) 8-pins RJ45",
				"Lifetime replacement exchange; burnt unit can be replaced",
			},
			UnitPrice:       80,
			DefaultQuantity: 2,
			CategoryID:      "protection",
		},
		{
			ID:          "cabling",
			Name:        "Cabling & PVC conduit pipe work",
			Description: "Essential cabling infrastructure for the barrier system",
			Details: []string{
				"PVC Conduit with accessories",
				"Heavy Duty 2.5 mm electric cable for Barriers",
				"PVC Conduit for Network Cabling ANPR Cameras",
			},
			UnitPrice:       2000,
			DefaultQuantity: 1,
			Required:        true,
			CategoryID:      "installation",
		},
		{
			ID:          "civil-works",
			Name:        "Civil Works",
			Description: "Necessary construction works for barrier installation",
			Details: []string{
				"Road Hacking for Barriers' Cables",
				"Barrier Concrete Island",
				"Other Related Civil Works",
			},
			UnitPrice:       1800,
			DefaultQuantity: 1,
			Required:        true,
			CategoryID:      "installation",
		},
		{
			ID:          "networking",
			Name:        "Networking Cables",
			Description: "Network infrastructure for communication between devices",
			Details: []string{
				"Networking Cables Termination for ANPR Cameras",
				"Networking Cables Testing and Commissioning",
			},
			UnitPrice:       1200,
			DefaultQuantity: 1,
			Required:        true,
			CategoryID:      "installation",
		},
		{
			ID:          "implementation",
			Name:        "Project Implementation",
			Description: "Complete system setup, testing and training",
			Details: []string{
				"Installation all related parts",
				"Testing include real life testing and simulations",
				"User Training for Management Officer and Security Officer",
			},
			UnitPrice:       500,
			DefaultQuantity: 1,
			Required:        true,
			CategoryID:      "installation",
		},
		{
			ID:          "loop-detector",
			Name:        "Ground Loop Coil and Loop Detector",
			Description: "Sensor system for vehicle detection",
			Details: []string{
				"High Temperature Loop Detector Coil",
				"0.75 mm² Thickness, 50 m per roll",
				"Waterproof, Oil proof, flame retardant, fire resistant",
				"Single channel Loop Detector with two relay outputs (OEM)",
				"Used for vehicle sensing detection",
				"Suitable for parking lots, road tolls and traffic signal control",
				"Response time < 100 ms; 230 VAC Powered; Consumption < 3 W",
			},
			UnitPrice:       350,
			DefaultQuantity: 6,
			CategoryID:      "detector",
		},
		{
			ID:          "anti-smash",
			Name:        "Barrier Anti-Smash Infrared Sensor",
			Description: "Safety device to prevent barrier arm damage and accidents",
			Details: []string{
				"Anti-Smash Wave Radar (Freq: 79-81 Ghz)",
				"79G milimeter wave sensor; Connection: RS 485",
				"Detection distance: 1~6 m (adjustable); Width: 0.5~1.5 m (adjustable)",
				"IP 65 rated; Powered: DC 10V~24V (Default: DC 12V 1A), < 2.5 W",
			},
			UnitPrice:       670,
			DefaultQuantity: 6,
			CategoryID:      "detector",
		},
		{
			ID:          "push-button",
			Name:        "Heavy Duty Barrier Push Button",
			Description: "Manual control button for barrier operation",
			Details: []string{
				"Communication: N/O signal",
				"Design with up, stop & down icon",
			},
			UnitPrice:       50,
			DefaultQuantity: 4,
			CategoryID:      "button",
		},
		{
			ID:          "card-bw-one",
			Name:        "UHF RFID Access Card (ONE SIDED Black and White Printing)",
			Description: "RFID access cards for vehicle identification with one-sided B&W printing",
			Details: []string{
				"UHF RFID technology",
				"One-sided black and white printing",
				"Compatible with the UHF reader",
			},
			UnitPrice:       15,
			DefaultQuantity: 1000,
			MaxQuantity:     intPtr(10000),
			CategoryID:      "accessCard",
		},
		{
			ID:          "card-bw-two",
			Name:        "UHF RFID Access Card (TWO SIDED Black and White Printing)",
			Description: "RFID access cards for vehicle identification with two-sided B&W printing",
			Details: []string{
				"UHF RFID technology",
				"Two-sided black and white printing",
				"Compatible with the UHF reader",
			},
			UnitPrice:       16,
			DefaultQuantity: 1000,
			MaxQuantity:     intPtr(10000),
			CategoryID:      "accessCard",
		},
		{
			ID:          "card-color-two",
			Name:        "UHF RFID Access Card (TWO SIDED Colour Printing)",
			Description: "RFID access cards for vehicle identification with two-sided color printing",
			Details: []string{
				"UHF RFID technology",
				"Two-sided color printing",
				"Compatible with the UHF reader",
			},
			UnitPrice:       25,
			DefaultQuantity: 1000,
			MaxQuantity:     intPtr(10000),
			CategoryID:      "accessCard",
		},
		{
			ID:          "card-sticker",
			Name:        "UHF RFID Access Card (ONE SIDED Colour Designed Sticker)",
			Description: "RFID access cards with custom color sticker design",
			Details: []string{
				"UHF RFID technology",
				"One-sided color designed sticker",
				"Compatible with the UHF reader",
			},
			UnitPrice:       15,
			DefaultQuantity: 1000,
			MaxQuantity:     intPtr(10000),
			CategoryID:      "accessCard",
		},
		{
			ID:          "router",
			Name:        "4G Gigabit Router",
			Description: "Network connectivity device for the barrier system",
			Details: []string{
				"300 Mbps Capability",
				"4 x Gigabit LAN",
				"12v Powered",
			},
			UnitPrice:       0,
			DefaultQuantity: 1,
			CategoryID:      "other",
		},
	}
}

// DefaultWarrantyOptions returns the built-in warranty tiers.
func DefaultWarrantyOptions() []models.WarrantyOption {
	return []models.WarrantyOption{
		{ID: "standard", Name: "Standard Warranty", Description: "Basic warranty coverage for defects and installation issues", Duration: "1 year", Price: 0},
		{ID: "extended-2", Name: "Extended Warranty (2 Years)", Description: "Extended warranty coverage for 2 years", Duration: "2 years", Price: 2500},
		{ID: "extended-3", Name: "Extended Warranty (3 Years)", Description: "Extended warranty coverage for 3 years", Duration: "3 years", Price: 4000},
		{ID: "premium", Name: "Premium Warranty", Description: "Comprehensive warranty with priority support and quarterly maintenance visits", Duration: "3 years", Price: 6000},
	}
}

// DefaultPaymentOptions returns the built-in payment plans.
func DefaultPaymentOptions() []models.PaymentOption {
	return []models.PaymentOption{
		{
			ID:          "one-off",
			Name:        "One-time Purchase",
			Description: "Pay the full amount upfront",
			Type:        models.PaymentOneOff,
			Multiplier:  1,
			Features: []string{
				"Full ownership",
				"No additional fees",
				"Includes standard warranty",
			},
		},
		{
			ID:                "lease",
			Name:              "Lease to Own",
			Description:       "Low monthly payments with ownership at the end",
			Type:              models.PaymentLease,
			Multiplier:        1.15,
			TermMonths:        24,
			DepositPercentage: 10,
			Features: []string{
				"Ownership transfers after final payment",
				"Extended warranty included",
				"Lower upfront costs",
			},
		},
		{
			ID:                "rental",
			Name:              "Rental",
			Description:       "Flexible contract with lower monthly payments",
			Type:              models.PaymentRental,
			Multiplier:        0.7,
			TermMonths:        12,
			DepositPercentage: 15,
			Features: []string{
				"Return at end of contract",
				"Maintenance included",
				"Option to upgrade at end of term",
			},
		},
	}
}

// SeedCatalog populates the repository with the built-in barrier gate
// catalog. Seeding is skipped when categories already exist, so it is safe
// to call on every startup.
func SeedCatalog(repo CatalogRepository) error {
	existing, err := repo.GetCategories()
	if err != nil {
		return fmt.Errorf("failed to check existing catalog: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	for _, category := range DefaultCategories() {
		c := category
		if err := repo.CreateCategory(&c); err != nil {
			return fmt.Errorf("failed to seed category %s: %w", category.ID, err)
		}
	}
	for _, product := range DefaultProducts() {
		p := product
		if err := repo.CreateProduct(&p); err != nil {
			return fmt.Errorf("failed to seed product %s: %w", product.ID, err)
		}
	}
	for _, warranty := range DefaultWarrantyOptions() {
		w := warranty
		if err := repo.CreateWarrantyOption(&w); err != nil {
			return fmt.Errorf("failed to seed warranty option %s: %w", warranty.ID, err)
		}
	}
	for _, payment := range DefaultPaymentOptions() {
		p := payment
		if err := repo.CreatePaymentOption(&p); err != nil {
			return fmt.Errorf("failed to seed payment option %s: %w", payment.ID, err)
		}
	}
	return nil
}
