package entity

// Record is one prefecture row of the treatment/sickbed report.
// Records are built once during an extraction pass and never mutated.
type Record struct {
	Prefecture        Prefecture    `json:"prefecture"`
	Phase             Phase         `json:"phase"`
	InpatientCount    PatientCount  `json:"inpatient_count"`
	DedicatedBedCount ResourceCount `json:"dedicated_bed_count"`
}

type Prefecture struct {
	Code string `json:"code"` // Two characters, zero-padded ("06")
	Name string `json:"name"` // Display name ("山形県")
}

type PhaseMode string

const (
	// PhaseModeNormal is the 一般フェーズ, written with plain numerals.
	PhaseModeNormal PhaseMode = "Normal"
	// PhaseModeEmergency is the 緊急フェーズ, written with Roman numerals.
	PhaseModeEmergency PhaseMode = "Emergency"
)

// Phase is the current/maximum escalation level of a row. The document is
// expected to keep Current <= Maximum but this is not enforced here.
type Phase struct {
	Current uint8     `json:"current"`
	Maximum uint8     `json:"maximum"`
	Mode    PhaseMode `json:"mode"`
}

type PatientCount struct {
	Total     uint32 `json:"total"`     // 患者総数（入院者数）
	Dedicated uint32 `json:"dedicated"` // 確保病床使用者
	Extra     uint32 `json:"extra"`     // 臨時・待機病床使用者
}

type ResourceCount struct {
	AvailableOrAssigned uint32 `json:"available_or_assigned"` // 即応病床
	Guaranteed          uint32 `json:"guaranteed"`            // 確保病床
	ExtraGuaranteed     uint32 `json:"extra_guaranteed"`      // 臨時医療施設・入院待機施設
}
