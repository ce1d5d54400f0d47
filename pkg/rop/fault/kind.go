package fault

// Kind is the semantic tag of a Fault.
type Kind int

const (
	// KindUnknown is reported for errors outside the taxonomy
	KindUnknown Kind = iota
	// KindValidation - input failed a correctness rule
	KindValidation
	// KindNotFound - referenced resource is absent
	KindNotFound
	// KindUnauthorized - caller lacks permission
	KindUnauthorized
	// KindBusinessRule - domain invariant violated
	KindBusinessRule
	// KindTechnical - infrastructure or runtime failure
	KindTechnical
	// KindTimeout - a Technical fault raised when an operation exceeded its deadline
	KindTimeout
	// KindConcurrency - resource mutated by a concurrent actor
	KindConcurrency
	// KindCancellation - operation aborted before completion
	KindCancellation
)

// String returns the name used when a Fault is serialized.
func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "ValidationError"
	case KindNotFound:
		return "NotFoundError"
	case KindUnauthorized:
		return "UnauthorizedError"
	case KindBusinessRule:
		return "BusinessRuleError"
	case KindTechnical:
		return "TechnicalError"
	case KindTimeout:
		return "TimeoutError"
	case KindConcurrency:
		return "ConcurrencyError"
	case KindCancellation:
		return "CancellationError"
	default:
		return "Error"
	}
}

// Is reports whether k is target or a specialization of it.
func (k Kind) Is(target Kind) bool {
	if k == target {
		return true
	}
	return k == KindTimeout && target == KindTechnical
}

func (k Kind) label() string {
	switch k {
	case KindValidation:
		return "Validation Error"
	case KindNotFound:
		return "Not Found"
	case KindUnauthorized:
		return "Unauthorized"
	case KindBusinessRule:
		return "Business Rule Violation"
	case KindTechnical, KindTimeout:
		return "Technical Error"
	case KindConcurrency:
		return "Concurrency Error"
	default:
		// cancellation and unknown kinds render without a prefix
		return ""
	}
}

func (k Kind) retryable() bool {
	switch k {
	case KindTechnical, KindTimeout, KindConcurrency:
		return true
	default:
		return false
	}
}
