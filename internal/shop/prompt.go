package shop

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/tindahan-pay/tindahan_pay/internal/money"
)

// errSessionClosed reports that the input stream ended mid-session.
var errSessionClosed = errors.New("input closed")

func (s *Shop) readLine(prompt string) (string, error) {
	fmt.Fprint(s.out, prompt)
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", err
		}
		return "", errSessionClosed
	}
	return strings.TrimSpace(s.in.Text()), nil
}

// readAmount re-prompts until the input parses as a decimal amount.
func (s *Shop) readAmount(prompt string) (decimal.Decimal, error) {
	for {
		line, err := s.readLine(prompt)
		if err != nil {
			return decimal.Decimal{}, err
		}
		amount, err := money.Parse(line)
		if err != nil {
			fmt.Fprintln(s.out, "Invalid input. Please enter a valid number.")
			continue
		}
		return amount, nil
	}
}

// readInt re-prompts until the input parses as an integer.
func (s *Shop) readInt(prompt string) (int, error) {
	for {
		line, err := s.readLine(prompt)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintln(s.out, "Please enter a valid number.")
			continue
		}
		return n, nil
	}
}

// readTender re-prompts until the amount received covers the total due.
func (s *Shop) readTender(due decimal.Decimal) (decimal.Decimal, error) {
	for {
		amount, err := s.readAmount("Enter amount received: ")
		if err != nil {
			return decimal.Decimal{}, err
		}
		if amount.LessThan(due) {
			fmt.Fprintln(s.out, "Amount received is not enough. Please enter a valid amount.")
			continue
		}
		return amount, nil
	}
}
