/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package payment maps case-insensitive payment-mode tags to handler
// variants. It is an illustrative consumer of the kvx shared cache, not a
// dependency of it: nothing here touches the cache's internal state.
package payment

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyMethod is returned when an empty or blank tag is provided.
	ErrEmptyMethod = errors.New("payment: empty method")
	// ErrUnknownMethod is wrapped into the error returned for
	// unrecognized tags; match it with errors.Is.
	ErrUnknownMethod = errors.New("payment: unknown method")
)

// Method identifies one of the supported payment methods.
//
// Method is a small enumerated type. The zero value is CreditCard; code
// that needs "no method selected" should track that separately rather
// than reserving an enum slot for it.
//
// Method values are plain integers and safe to use concurrently. The
// textual forms produced by String and MarshalText are stable public API;
// Parse accepts them case-insensitively.
type Method int

const (
	// CreditCard selects the credit card processor.
	CreditCard Method = iota
	// DebitCard selects the debit card processor.
	DebitCard
	// UPI selects the Unified Payments Interface processor.
	UPI
	// NetBanking selects the net banking processor.
	NetBanking
)

// String returns a human-readable representation of the Method value.
// For unknown or out-of-range values it returns a diagnostic
// "Unknown(<n>)" form rather than panicking, so corrupted values can
// still be surfaced in logs.
func (m Method) String() string {
	switch m {
	case CreditCard:
		return "CreditCard"
	case DebitCard:
		return "DebitCard"
	case UPI:
		return "UPI"
	case NetBanking:
		return "NetBanking"
	default:
		return fmt.Sprintf("Unknown(%d)", m)
	}
}

// Parse parses a textual payment-mode tag into a Method.
//
// Matching is case-insensitive and surrounding whitespace is trimmed, so
// "creditcard", "CREDITCARD" and " CreditCard " all yield CreditCard.
// Any other input, including the empty string, results in a non-nil
// error; callers must not rely on the returned Method in the error case.
func Parse(s string) (Method, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return CreditCard, ErrEmptyMethod
	}

	switch strings.ToLower(trimmed) {
	case "creditcard":
		return CreditCard, nil
	case "debitcard":
		return DebitCard, nil
	case "upi":
		return UPI, nil
	case "netbanking":
		return NetBanking, nil
	default:
		return CreditCard, fmt.Errorf("%w %q", ErrUnknownMethod, s)
	}
}

// MustParse is like Parse but panics on invalid input. It is intended for
// hard-coded tags in Go code and tests; use Parse for untrusted input.
func MustParse(s string) Method {
	m, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return m
}

// MarshalText encodes Method as text. It implements encoding.TextMarshaler.
// Unknown values fail rather than serializing the diagnostic form.
func (m Method) MarshalText() ([]byte, error) {
	switch m {
	case CreditCard, DebitCard, UPI, NetBanking:
		return []byte(m.String()), nil
	default:
		return nil, fmt.Errorf("payment: cannot marshal unknown method %d", m)
	}
}

// UnmarshalText decodes a Method from its textual representation. It
// implements encoding.TextUnmarshaler and accepts the same inputs as
// Parse. On failure the target is left unchanged.
func (m *Method) UnmarshalText(text []byte) error {
	value, err := Parse(string(text))
	if err != nil {
		return err
	}
	*m = value
	return nil
}

// Handler processes payments for a single payment method.
// Implementations are stateless and safe for concurrent use.
type Handler interface {
	// Pay processes a payment of amount and returns a human-readable
	// confirmation line.
	Pay(amount float64) string
}

// New returns the Handler for the given payment-mode tag. The tag is
// matched with Parse semantics (case-insensitive, trimmed). Unrecognized
// tags yield a non-nil error and a nil Handler.
func New(tag string) (Handler, error) {
	m, err := Parse(tag)
	if err != nil {
		return nil, err
	}
	return ForMethod(m), nil
}

// ForMethod returns the Handler for a known Method.
// Unknown values fall back to the credit card handler; use Parse or
// UnmarshalText to validate external input first.
func ForMethod(m Method) Handler {
	switch m {
	case DebitCard:
		return debitCard{}
	case UPI:
		return upi{}
	case NetBanking:
		return netBanking{}
	default:
		return creditCard{}
	}
}

type creditCard struct{}

// Ensure creditCard implements Handler.
var _ Handler = creditCard{}

func (creditCard) Pay(amount float64) string {
	return fmt.Sprintf("Payment Processing from Credit Card for amount = %.2f", amount)
}

type debitCard struct{}

var _ Handler = debitCard{}

func (debitCard) Pay(amount float64) string {
	return fmt.Sprintf("Payment Processing for Debit Card for amount = %.2f", amount)
}

type upi struct{}

var _ Handler = upi{}

func (upi) Pay(amount float64) string {
	return fmt.Sprintf("Payment Processing for UPI for amount = %.2f", amount)
}

type netBanking struct{}

var _ Handler = netBanking{}

func (netBanking) Pay(amount float64) string {
	return fmt.Sprintf("Payment Processing for NetBanking for amount = %.2f", amount)
}
