package domain

// Issuer identifies the card-issuing bank whose statement layout an
// extractor targets.
type Issuer string

const (
	IssuerKotak      Issuer = "KOTAK"
	IssuerHDFC       Issuer = "HDFC"
	IssuerICICI      Issuer = "ICICI"
	IssuerAxis       Issuer = "AXIS"
	IssuerIDFC       Issuer = "IDFC"
	IssuerAmex       Issuer = "AMEX"
	IssuerCapitalOne Issuer = "CAPITAL_ONE"
	IssuerUnknown    Issuer = "UNKNOWN"
)

// DisplayName returns the issuer name as printed on its statements.
func (i Issuer) DisplayName() string {
	switch i {
	case IssuerKotak:
		return "Kotak Mahindra Bank"
	case IssuerHDFC:
		return "HDFC Bank"
	case IssuerICICI:
		return "ICICI Bank"
	case IssuerAxis:
		return "Axis Bank"
	case IssuerIDFC:
		return "IDFC First Bank"
	case IssuerAmex:
		return "American Express Banking Corp"
	case IssuerCapitalOne:
		return "Capital One Europe Plc"
	default:
		return "Unknown"
	}
}

// Engine identifies a text acquisition strategy.
type Engine string

const (
	EngineStructural      Engine = "structural"
	EngineStructuralTable Engine = "structural_table"
	EngineOCR             Engine = "ocr"
)

// JobStatus represents the lifecycle of a parse job.
type JobStatus string

const (
	JobStatusPending    JobStatus = "pending"
	JobStatusProcessing JobStatus = "processing"
	JobStatusCompleted  JobStatus = "completed"
	JobStatusFailed     JobStatus = "failed"
)

// FileType represents the allowed file types for upload.
type FileType string

const (
	FileTypePDF FileType = "pdf"
)

// AllowedContentTypes maps MIME content types to FileType.
var AllowedContentTypes = map[string]FileType{
	"application/pdf": FileTypePDF,
}

// AllowedExtensions maps file extensions (without dot) to FileType.
var AllowedExtensions = map[string]FileType{
	"pdf": FileTypePDF,
}
