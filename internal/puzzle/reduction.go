package puzzle

import "fmt"

type Reduction int

const (
	ReduceSum Reduction = iota
	ReduceMin
	ReduceProduct
)

func (r Reduction) String() string {
	switch r {
	case ReduceSum:
		return "sum"
	case ReduceMin:
		return "min"
	case ReduceProduct:
		return "product"
	default:
		return fmt.Sprintf("reduction(%d)", int(r))
	}
}

// Apply folds the values into a single answer. An empty slice always reduces
// to 0, including for min and product.
func (r Reduction) Apply(values []int) int {
	if len(values) == 0 {
		return 0
	}

	switch r {
	case ReduceMin:
		return smallest(values)
	case ReduceProduct:
		result := 1
		for _, v := range values {
			result *= v
		}
		return result
	default:
		total := 0
		for _, v := range values {
			total += v
		}
		return total
	}
}

func smallest(values []int) int {
	result := values[0]
	for _, v := range values[1:] {
		if v < result {
			result = v
		}
	}
	return result
}
