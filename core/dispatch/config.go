package dispatch

// Config defines dispatch-related settings.
type Config struct {
	// SkipBusyDrivers restricts RequestDriver to idle drivers. When false every
	// registered driver is a candidate, even one already heading elsewhere.
	SkipBusyDrivers bool `json:"skip_busy_drivers"`
}
