package languages

import "lang-atlas/core/table"

// LanguageRow is the relational shape of a master row, materialized by the
// export command and queried by the HTTP API when a database is attached.
type LanguageRow struct {
	ID            uint   `gorm:"primaryKey;autoIncrement" json:"-"`
	LangID        string `gorm:"column:lang_id;uniqueIndex;size:128" json:"lang_id"`
	CanonicalName string `gorm:"column:canonical_name;index;size:255" json:"canonical_name"`
	SourceFlags   string `gorm:"column:source_flags;size:64" json:"source_flags"`
	Types         string `gorm:"column:types;size:64" json:"types"`
	Extensions    string `gorm:"column:extensions" json:"extensions"`
	FirstAppeared string `gorm:"column:first_appeared;size:32" json:"first_appeared"`
	Homepage      string `gorm:"column:homepage" json:"homepage"`
	Paradigms     string `gorm:"column:paradigms" json:"paradigms"`
	Typing        string `gorm:"column:typing;size:128" json:"typing"`
	DesignedBy    string `gorm:"column:designed_by" json:"designed_by"`
	InfluencedBy  string `gorm:"column:influenced_by" json:"influenced_by"`
	HelloWorld    bool   `gorm:"column:hello_world" json:"hello_world"`
	LinguistKey   string `gorm:"column:linguist_key;size:255" json:"linguist_key"`
	EvidenceURLs  string `gorm:"column:evidence_urls" json:"evidence_urls"`
	Notes         string `gorm:"column:notes" json:"notes"`

	InPLDB      bool `gorm:"column:in_pldb" json:"in_pldb"`
	InLinguist  bool `gorm:"column:in_linguist" json:"in_linguist"`
	InWikipedia bool `gorm:"column:in_wikipedia" json:"in_wikipedia"`
	InEsolang   bool `gorm:"column:in_esolang" json:"in_esolang"`

	HasExtensions bool `gorm:"column:has_extensions" json:"has_extensions"`
	HasParadigm   bool `gorm:"column:has_paradigm" json:"has_paradigm"`
	HasTyping     bool `gorm:"column:has_typing" json:"has_typing"`
	HasHelloWorld bool `gorm:"column:has_hello_world" json:"has_hello_world"`
	SourceCount   int  `gorm:"column:source_count" json:"source_count"`
	AliasCount    int  `gorm:"column:alias_count" json:"alias_count"`

	HyperpolyglotName string `gorm:"column:hyperpolyglot_name;size:255" json:"hyperpolyglot_name,omitempty"`
	InHyperpolyglot   bool   `gorm:"column:in_hyperpolyglot" json:"in_hyperpolyglot"`
	HPType            string `gorm:"column:hp_type;size:32" json:"hp_type,omitempty"`
	HPGroup           string `gorm:"column:hp_group;size:255" json:"hp_group,omitempty"`
	HPColor           string `gorm:"column:hp_color;size:16" json:"hp_color,omitempty"`

	PygmentsName      string `gorm:"column:pygments_name;size:255" json:"pygments_name,omitempty"`
	InPygments        bool   `gorm:"column:in_pygments" json:"in_pygments"`
	PygmentsModule    string `gorm:"column:pygments_module;size:255" json:"pygments_module,omitempty"`
	PygmentsClass     string `gorm:"column:pygments_class;size:255" json:"pygments_class,omitempty"`
	PygmentsAliases   string `gorm:"column:pygments_aliases" json:"pygments_aliases,omitempty"`
	PygmentsFilenames string `gorm:"column:pygments_filenames" json:"pygments_filenames,omitempty"`
	PygmentsMimetypes string `gorm:"column:pygments_mimetypes" json:"pygments_mimetypes,omitempty"`

	InRosettaCode     bool   `gorm:"column:in_rosettacode" json:"in_rosettacode"`
	RosettaName       string `gorm:"column:rosettacode_name;size:255" json:"rosettacode_name,omitempty"`
	RosettaURL        string `gorm:"column:rosettacode_url" json:"rosettacode_url,omitempty"`
	RosettaSummary    string `gorm:"column:rosettacode_summary" json:"rosettacode_summary,omitempty"`
	RosettaTasksCount int    `gorm:"column:rosettacode_tasks_count" json:"rosettacode_tasks_count,omitempty"`
}

// TableName fixes the table name regardless of GORM pluralization rules.
func (LanguageRow) TableName() string {
	return "languages"
}

// FromRecord converts an in-memory master record to its relational shape.
func FromRecord(r *table.LanguageRecord) LanguageRow {
	return LanguageRow{
		LangID:        r.LangID,
		CanonicalName: r.CanonicalName,
		SourceFlags:   r.SourceFlags,
		Types:         r.Types,
		Extensions:    r.Extensions,
		FirstAppeared: r.FirstAppeared,
		Homepage:      r.Homepage,
		Paradigms:     r.Paradigms,
		Typing:        r.Typing,
		DesignedBy:    r.DesignedBy,
		InfluencedBy:  r.InfluencedBy,
		HelloWorld:    r.HelloWorld,
		LinguistKey:   r.LinguistKey,
		EvidenceURLs:  r.EvidenceURLs,
		Notes:         r.Notes,

		InPLDB:      r.InPLDB,
		InLinguist:  r.InLinguist,
		InWikipedia: r.InWikipedia,
		InEsolang:   r.InEsolang,

		HasExtensions: r.HasExtensions,
		HasParadigm:   r.HasParadigm,
		HasTyping:     r.HasTyping,
		HasHelloWorld: r.HasHelloWorld,
		SourceCount:   r.SourceCount,
		AliasCount:    r.AliasCount,

		HyperpolyglotName: r.HyperpolyglotName,
		InHyperpolyglot:   r.InHyperpolyglot,
		HPType:            r.HPType,
		HPGroup:           r.HPGroup,
		HPColor:           r.HPColor,

		PygmentsName:      r.PygmentsName,
		InPygments:        r.InPygments,
		PygmentsModule:    r.PygmentsModule,
		PygmentsClass:     r.PygmentsClass,
		PygmentsAliases:   r.PygmentsAliases,
		PygmentsFilenames: r.PygmentsFilenames,
		PygmentsMimetypes: r.PygmentsMimetypes,

		InRosettaCode:     r.InRosettaCode,
		RosettaName:       r.RosettaName,
		RosettaURL:        r.RosettaURL,
		RosettaSummary:    r.RosettaSummary,
		RosettaTasksCount: r.RosettaTasksCount,
	}
}
