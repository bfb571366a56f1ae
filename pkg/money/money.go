package money

import (
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

// Amount is a currency value with cent precision.
// The zero value is a valid amount of 0.
type Amount struct {
	d decimal.Decimal
}

// Zero is an amount of 0.
var Zero = Amount{}

var hundred = decimal.NewFromInt(100)

// New wraps a decimal value.
func New(d decimal.Decimal) Amount {
	return Amount{d: d}
}

// FromInt returns a whole-unit amount.
func FromInt(v int64) Amount {
	return Amount{d: decimal.NewFromInt(v)}
}

// FromCents returns the amount for a number of cents.
func FromCents(cents int64) Amount {
	return Amount{d: decimal.New(cents, -2)}
}

// Parse reads a decimal string such as "12.50".
func Parse(s string) (Amount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Zero, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return Amount{d: d}, nil
}

// MustParse is Parse for constants and tests.
func MustParse(s string) Amount {
	a, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return a
}

func (a Amount) Decimal() decimal.Decimal { return a.d }

func (a Amount) Add(b Amount) Amount { return Amount{d: a.d.Add(b.d)} }
func (a Amount) Sub(b Amount) Amount { return Amount{d: a.d.Sub(b.d)} }
func (a Amount) Neg() Amount { return Amount{d: a.d.Neg()} }

// MulRatio multiplies by an arbitrary decimal factor without rounding.
func (a Amount) MulRatio(f decimal.Decimal) Amount { return Amount{d: a.d.Mul(f)} }

// Half returns a/2 truncated to cents.
func (a Amount) Half() Amount {
	return Amount{d: a.d.Div(decimal.NewFromInt(2))}.Truncate()
}

// DivInt divides by n, truncating to cents.
func (a Amount) DivInt(n int64) Amount {
	if n == 0 {
		return a
	}
	return Amount{d: a.d.DivRound(decimal.NewFromInt(n), 8)}.Truncate()
}

// Truncate drops precision below one cent, rounding toward zero.
func (a Amount) Truncate() Amount { return Amount{d: a.d.Truncate(2)} }

// Round rounds half away from zero to cents.
func (a Amount) Round() Amount { return Amount{d: a.d.Round(2)} }

// Cents returns the amount in whole cents, truncated.
func (a Amount) Cents() int64 { return a.d.Mul(hundred).IntPart() }

// Floor returns the whole-unit floor of the amount.
func (a Amount) Floor() int64 { return a.d.Floor().IntPart() }

// HasSubCentPrecision reports whether the amount carries more than two decimals.
func (a Amount) HasSubCentPrecision() bool { return !a.d.Equal(a.d.Truncate(2)) }

func (a Amount) Cmp(b Amount) int { return a.d.Cmp(b.d) }
func (a Amount) Equal(b Amount) bool { return a.d.Equal(b.d) }
func (a Amount) GreaterThan(b Amount) bool { return a.d.GreaterThan(b.d) }
func (a Amount) LessThan(b Amount) bool { return a.d.LessThan(b.d) }
func (a Amount) IsZero() bool { return a.d.IsZero() }
func (a Amount) IsNegative() bool { return a.d.IsNegative() }
func (a Amount) IsPositive() bool { return a.d.IsPositive() }
func (a Amount) GreaterOrEqual(b Amount) bool { return a.d.GreaterThanOrEqual(b.d) }

// Min returns the smallest of the given amounts.
func Min(first Amount, rest ...Amount) Amount {
	m := first
	for _, r := range rest {
		if r.LessThan(m) {
			m = r
		}
	}
	return m
}

// Max returns the larger of two amounts.
func Max(a, b Amount) Amount {
	if a.GreaterThan(b) {
		return a
	}
	return b
}

// Sum adds all amounts.
func Sum(amounts ...Amount) Amount {
	total := Zero
	for _, a := range amounts {
		total = total.Add(a)
	}
	return total
}

// String renders the amount with exactly two decimals.
func (a Amount) String() string { return a.d.StringFixed(2) }

// MarshalJSON writes the amount as a JSON number with two decimals.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.d.StringFixed(2)), nil
}

// UnmarshalJSON accepts both JSON numbers and quoted decimal strings.
// A JSON null leaves the amount unchanged.
func (a *Amount) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}
	var raw json.Number
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		raw = json.Number(s)
	} else if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	parsed, err := Parse(raw.String())
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// MarshalDynamoDBAttributeValue stores the amount as a DynamoDB number so
// update expressions can add to it.
func (a Amount) MarshalDynamoDBAttributeValue() (types.AttributeValue, error) {
	return &types.AttributeValueMemberN{Value: a.d.String()}, nil
}

// UnmarshalDynamoDBAttributeValue reads a DynamoDB number or string.
func (a *Amount) UnmarshalDynamoDBAttributeValue(av types.AttributeValue) error {
	var raw string
	switch v := av.(type) {
	case *types.AttributeValueMemberN:
		raw = v.Value
	case *types.AttributeValueMemberS:
		raw = v.Value
	case *types.AttributeValueMemberNULL:
		*a = Zero
		return nil
	default:
		return fmt.Errorf("unsupported attribute value %T for amount", av)
	}
	parsed, err := Parse(raw)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
