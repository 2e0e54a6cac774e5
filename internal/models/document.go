package models

// Document type constants
const (
	DocumentTypeLease       = "lease"
	DocumentTypeReceipt     = "receipt"
	DocumentTypeUtility     = "utility"
	DocumentTypeMaintenance = "maintenance"
	DocumentTypeOther       = "other"
)

// Document source kind constants
const (
	SourceKindImage    = "image"
	SourceKindDocument = "document"
	SourceKindURL      = "url"
)

// RelatedTo constants
const (
	RelatedToProperty = "property"
	RelatedToTenant   = "tenant"
	RelatedToUnit     = "unit"
)

// DocumentSource describes where a document's content lives. The descriptor
// is stored verbatim; file contents are never inspected.
type DocumentSource struct {
	Kind     string `json:"kind"`
	URI      string `json:"uri"`
	Name     string `json:"name,omitempty"`
	MimeType string `json:"mimeType,omitempty"`
	Size     int64  `json:"size,omitempty"`
}

// Document is a file or link attached to a property, tenant or unit.
// RelatedID must reference an existing entity of the kind named by RelatedTo.
type Document struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Type       string         `json:"type"`
	Source     DocumentSource `json:"source"`
	UploadDate string         `json:"uploadDate"`
	RelatedTo  string         `json:"relatedTo"`
	RelatedID  string         `json:"relatedId"`
}

// ValidRelatedTo reports whether r names an attachable entity kind
func ValidRelatedTo(r string) bool {
	switch r {
	case RelatedToProperty, RelatedToTenant, RelatedToUnit:
		return true
	}
	return false
}
