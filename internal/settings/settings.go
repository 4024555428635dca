// Package settings manages the System Settings bundle and its backups.
package settings

import "github.com/zWesleyDavid/prototipo-luvr/internal/domain"

// Settings is the bundle shown on the System Settings screen.
type Settings struct {
	Notifications Notifications `json:"notifications" yaml:"notifications"`
	Theme         Theme         `json:"theme" yaml:"theme"`
	System        System        `json:"system" yaml:"system"`
	Business      Business      `json:"business" yaml:"business"`
}

type Notifications struct {
	Enabled           bool `json:"enabled" yaml:"enabled"`
	Email             bool `json:"email" yaml:"email"`
	Push              bool `json:"push" yaml:"push"`
	Sound             bool `json:"sound" yaml:"sound"`
	CheckoutReminders bool `json:"checkoutReminders" yaml:"checkoutReminders"`
	MaintenanceAlerts bool `json:"maintenanceAlerts" yaml:"maintenanceAlerts"`
	LowStockAlerts    bool `json:"lowStockAlerts" yaml:"lowStockAlerts"`
}

type Theme struct {
	Mode           domain.ThemeMode `json:"mode" yaml:"mode"`
	PrimaryColor   string           `json:"primaryColor" yaml:"primaryColor"`
	FontSize       string           `json:"fontSize" yaml:"fontSize"`
	SidebarCompact bool             `json:"sidebarCompact" yaml:"sidebarCompact"`
	Animations     bool             `json:"animations" yaml:"animations"`
}

type System struct {
	AutoBackup       bool   `json:"autoBackup" yaml:"autoBackup"`
	BackupFrequency  string `json:"backupFrequency" yaml:"backupFrequency"`
	SessionTimeout   int    `json:"sessionTimeout" yaml:"sessionTimeout"` // minutes
	MaxLoginAttempts int    `json:"maxLoginAttempts" yaml:"maxLoginAttempts"`
	TwoFactorAuth    bool   `json:"twoFactorAuth" yaml:"twoFactorAuth"`
	AuditLog         bool   `json:"auditLog" yaml:"auditLog"`
}

type Business struct {
	CheckoutTime     string  `json:"checkoutTime" yaml:"checkoutTime"`
	LateCheckoutFee  float64 `json:"lateCheckoutFee" yaml:"lateCheckoutFee"`
	Currency         string  `json:"currency" yaml:"currency"`
	TaxRate          float64 `json:"taxRate" yaml:"taxRate"`
	ReceiptLogo      bool    `json:"receiptLogo" yaml:"receiptLogo"`
	AutoReceiptEmail bool    `json:"autoReceiptEmail" yaml:"autoReceiptEmail"`
}

// Defaults returns the factory settings.
func Defaults() Settings {
	return Settings{
		Notifications: Notifications{
			Enabled:           true,
			Email:             true,
			Push:              false,
			Sound:             true,
			CheckoutReminders: true,
			MaintenanceAlerts: true,
			LowStockAlerts:    false,
		},
		Theme: Theme{
			Mode:           domain.ModeSystem,
			PrimaryColor:   "purple",
			FontSize:       "medium",
			SidebarCompact: false,
			Animations:     true,
		},
		System: System{
			AutoBackup:       true,
			BackupFrequency:  "daily",
			SessionTimeout:   30,
			MaxLoginAttempts: 3,
			TwoFactorAuth:    false,
			AuditLog:         true,
		},
		Business: Business{
			CheckoutTime:     "12:00",
			LateCheckoutFee:  50,
			Currency:         "BRL",
			TaxRate:          0,
			ReceiptLogo:      true,
			AutoReceiptEmail: false,
		},
	}
}
