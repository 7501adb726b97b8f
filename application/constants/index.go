package constants

// Stable response codes returned alongside failure messages. Clients branch on
// these, never on message text.
const (
	MALFORMED_IMAGE         uint = 4101
	FACE_COUNT_REJECTED     uint = 4102
	ENCODING_SHAPE_MISMATCH uint = 4103
	BIOMETRIC_MISMATCH      uint = 4104
	CREDENTIAL_MISMATCH     uint = 4105
	PROFILE_NOT_FOUND       uint = 4106
	SESSION_NOT_FOUND       uint = 4107
	DUPLICATE_PROFILE       uint = 4108
	SESSION_CONFLICT        uint = 4109
	STORE_ERROR             uint = 5101
)
