package simulate

// DefaultMaxSteps bounds a single run's recursion depth (spec §4.5,
// Termination of a run).
const DefaultMaxSteps = 1000

// TerminationType classifies one firing sequence's final marking against
// the globalSink place (spec §4.5, Per-sequence termination
// classification).
type TerminationType string

const (
	TerminationNone   TerminationType = "None"
	TerminationProper TerminationType = "Proper"
	TerminationWeak   TerminationType = "Weak"
	TerminationOption TerminationType = "Option"
)

// AggregateTermination classifies a whole run (every sequence) (spec
// §4.5, Aggregate termination).
type AggregateTermination string

const (
	AggregateClassical AggregateTermination = "Classical"
	AggregateRelaxed   AggregateTermination = "Relaxed"
	AggregateLazy      AggregateTermination = "Lazy"
	AggregateEasy      AggregateTermination = "Easy"
	AggregateNone      AggregateTermination = "None"
)

// Soundness is the overall verdict combining aggregate termination and
// liveness (spec §4.5, Overall soundness).
type Soundness string

const (
	SoundnessClassical    Soundness = "Classical"
	SoundnessWeak         Soundness = "Weak"
	SoundnessRelaxed      Soundness = "Relaxed"
	SoundnessEasy         Soundness = "Easy"
	SoundnessLazy         Soundness = "Lazy"
	SoundnessNoConclusion Soundness = "NoConclusion"
)

// Step is one firing step of a sequence: the marking it started from, the
// transitions fired simultaneously, and the transitions that were enabled
// at the *previous* step (spec §4.5, Termination of a run: "the enabled
// set at the previous step"). Enabled is therefore retrofitted onto this
// Step one recursion level after it is created — it is nil until the next
// step (or the sequence's terminal check) supplies it.
type Step struct {
	Marking map[string]int
	Fired   []string
	Enabled []string
	Log     string
}

// TerminationChecks records the four checks against the globalSink
// place's marking M[o] that decide a sequence's TerminationType (spec
// §8, "the four M[o] checks that decided the class").
type TerminationChecks struct {
	Reached     bool // M[o] >= 1
	ExactlyOne  bool // M[o] == 1
	OthersEmpty bool // every non-sink place holds 0 tokens
	Multiple    bool // M[o] > 1
}

// Sequence is one complete run from the initial marking to a terminal
// state (no transitions enabled, or maxSteps reached).
type Sequence struct {
	Steps       []Step
	Termination TerminationType
	Checks      TerminationChecks
}

// PerSequenceResult is one sequence's entry in BehaviouralReport's
// perSequenceResults[] (spec §6).
type PerSequenceResult struct {
	SequenceIndex      int
	Option             bool
	TerminationChecks  TerminationChecks
	TerminationType    TerminationType
	FiringSequence     []string
	ActivityExtraction []string
}

// Report is the behavioural analyser's output (spec §6,
// BehaviouralReport).
type Report struct {
	Sequences          []Sequence
	PerSequenceResults []PerSequenceResult
	OverallLiveness    bool
	OverallTermination AggregateTermination
	OverallSoundness   Soundness
}
