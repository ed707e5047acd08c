package model

// Severity of an interaction rule. Hard rules force a time change; soft
// rules only warn.
type Severity string

const (
	SeverityHard Severity = "hard"
	SeveritySoft Severity = "soft"
)

// Constraint is the closed set of payloads an interaction rule can carry.
// The scheduler switches exhaustively over the concrete types; adding a new
// kind means touching that switch.
type Constraint interface {
	isConstraint()
}

// MinSeparation requires the target and the conflicting item to be placed at
// least Minutes apart.
type MinSeparation struct {
	Minutes int `json:"minutes"`
}

// WithFood asks for the item to be co-located with a meal anchor.
type WithFood struct{}

// EmptyStomach prefers placement at wake, clear of any meal by the buffer.
type EmptyStomach struct {
	BufferMinutes int `json:"buffer_minutes"`
}

// AvoidAfter forbids scheduling later than After.
type AvoidAfter struct {
	After TimeOfDay `json:"after"`
}

// Advisory never changes placement; it always emits a warning.
type Advisory struct {
	Message string `json:"message"`
}

func (MinSeparation) isConstraint() {}
func (WithFood) isConstraint()      {}
func (EmptyStomach) isConstraint()  {}
func (AvoidAfter) isConstraint()    {}
func (Advisory) isConstraint()      {}

// InteractionRule is a named, versioned timing policy. Rules are read-only
// during a scheduling run; caller-supplied rules are unioned with the
// built-in set before matching.
type InteractionRule struct {
	RuleKey string `json:"rule_key"`
	Version int    `json:"version"`

	// Applicability: the rule applies to an item whose canonical name is in
	// AppliesTo, or whose tag set contains every tag in AppliesToTags.
	AppliesTo     []string `json:"applies_to,omitempty"`
	AppliesToTags []string `json:"applies_to_tags,omitempty"`

	// Conflict predicate: another item conflicts if its canonical name is in
	// ConflictsWith, or any of its tags appears in ConflictsWithTags. A rule
	// with neither produces a single constraint with no "other" item.
	ConflictsWith     []string `json:"conflicts_with,omitempty"`
	ConflictsWithTags []string `json:"conflicts_with_tags,omitempty"`

	Constraint Constraint `json:"constraint"`
	Severity   Severity   `json:"severity"`
	Confidence int        `json:"confidence"` // 0-100
	Rationale  string     `json:"rationale,omitempty"`
	References []string   `json:"references,omitempty"`
	Active     bool       `json:"active"`
}

// HasConflictPredicate reports whether the rule names any conflicting items
// or tags.
func (r *InteractionRule) HasConflictPredicate() bool {
	return len(r.ConflictsWith) > 0 || len(r.ConflictsWithTags) > 0
}

// AppliedConstraint is the result of matching one rule against one item, or
// one (item, other item) pair. A single rule may yield zero, one, or many of
// these.
type AppliedConstraint struct {
	Rule            *InteractionRule `json:"-"`
	RuleKey         string           `json:"rule_key"`
	Constraint      Constraint       `json:"constraint"`
	TargetCanonical string           `json:"target"`
	OtherCanonical  string           `json:"other,omitempty"`
}
