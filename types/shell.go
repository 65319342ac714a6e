package types

// ---- Shell status (retained) ----

// PowerState is the shell's position in the idle/sleep/wake cycle.
type PowerState string

const (
	PowerActive         PowerState = "active"
	PowerSleepRequested PowerState = "sleep_requested"
	PowerSleeping       PowerState = "sleeping"
	PowerWaking         PowerState = "waking"
)

type PowerStatus struct {
	State PowerState `json:"state"`
	TSms  int64      `json:"ts_ms"`
}

// AppStatus names the current application; Name is empty between a
// deactivate and the following activate.
type AppStatus struct {
	Name string `json:"name"`
	TSms int64  `json:"ts_ms"`
}
