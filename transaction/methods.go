// Package transaction builds ICON JSON-RPC requests and binds them to
// signatures over their canonical pre-image.
package transaction

const (
	// JSONRPCVersion is the protocol version carried by every request.
	JSONRPCVersion = "2.0"

	// DefaultID is used when a Builder leaves ID unset.
	DefaultID int64 = 1234

	// MethodSendTransaction submits a signed state-changing transaction.
	MethodSendTransaction = "icx_sendTransaction"

	// MethodCall invokes a read-only SCORE method.
	MethodCall = "icx_call"
)

// Data types of the optional "data" param.
const (
	DataTypeMessage = "message"
	DataTypeCall    = "call"
)

// Param keys written by the builder.
const (
	ParamFrom      = "from"
	ParamTo        = "to"
	ParamValue     = "value"
	ParamVersion   = "version"
	ParamNID       = "nid"
	ParamNonce     = "nonce"
	ParamStepLimit = "stepLimit"
	ParamTimestamp = "timestamp"
	ParamDataType  = "dataType"
	ParamData      = "data"
	ParamSignature = "signature"
)
