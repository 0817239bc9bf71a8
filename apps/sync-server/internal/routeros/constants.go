package routeros

// RouterOS REST API
const (
	PathPPPSecret     = "/rest/ppp/secret/{name}"
	HeaderContentType = "Content-Type"
	ContentTypeJSON   = "application/json"
)

// DeviceError.Operation に設定する操作名
const (
	OpSetSecret = "set-secret"
)
