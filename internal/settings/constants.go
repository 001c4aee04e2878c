package settings

const (
	optionOff = "Off"
	optionOn  = "On"
)

// Log messages
const (
	LogMsgSettingChanged  = "Mod setting changed"
	LogMsgSettingRejected = "Mod setting rejected"
	LogMsgSettingsReset   = "Mod settings reset"
	LogMsgPublishFailed   = "Failed to publish setting event"
)
