package tribool

// Bool is a logical value that may be missing.
type Bool int8

const (
	False Bool = iota
	True
	Missing
)

func Of(b bool) Bool {
	if b {
		return True
	}
	return False
}

func (b Bool) IsMissing() bool {
	return b == Missing
}

func (b Bool) String() string {
	switch b {
	case True:
		return "TRUE"
	case False:
		return "FALSE"
	}
	return "NA"
}

// And returns False if either operand is False, even when the other is missing.
func And(a, b Bool) Bool {
	if a == False || b == False {
		return False
	}
	if a == Missing || b == Missing {
		return Missing
	}
	return True
}

// Or returns True if either operand is True, even when the other is missing.
func Or(a, b Bool) Bool {
	if a == True || b == True {
		return True
	}
	if a == Missing || b == Missing {
		return Missing
	}
	return False
}

func Not(a Bool) Bool {
	switch a {
	case True:
		return False
	case False:
		return True
	}
	return Missing
}
