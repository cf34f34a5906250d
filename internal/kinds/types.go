package kinds

// DefaultKind is assumed when a request does not name an entity kind.
const DefaultKind = "actor"

// Kind describes one organizable entity kind.
type Kind struct {
	ID         string `yaml:"id" json:"id"`
	Label      string `yaml:"label" json:"label"`
	FolderKind string `yaml:"folder_kind" json:"folder_kind"` // kind tag carried by the kind's folders
}

// kindFile is the on-disk registry format.
type kindFile struct {
	Kinds []Kind `yaml:"kinds"`
}
