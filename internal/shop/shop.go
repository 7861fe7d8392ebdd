// Package shop implements the interactive terminal front end: a product
// catalog, a payment-method menu, and per-instrument submenus that each
// invoke one instrument operation and display the returned outcome.
package shop

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/tindahan-pay/tindahan_pay/internal/bank"
	"github.com/tindahan-pay/tindahan_pay/internal/card"
	"github.com/tindahan-pay/tindahan_pay/internal/cash"
	"github.com/tindahan-pay/tindahan_pay/internal/config"
	"github.com/tindahan-pay/tindahan_pay/internal/instrument"
	"github.com/tindahan-pay/tindahan_pay/internal/logging"
	"github.com/tindahan-pay/tindahan_pay/internal/money"
	"github.com/tindahan-pay/tindahan_pay/internal/notification"
	"github.com/tindahan-pay/tindahan_pay/internal/wallet"
)

// Deps carries the shop's collaborators.
type Deps struct {
	Cfg      config.Config
	Logger   *slog.Logger
	Notifier notification.Notifier
	Catalog  []Product
	In       io.Reader
	Out      io.Writer
}

// Shop drives one interactive shopping session.
type Shop struct {
	cfg      config.Config
	logger   *slog.Logger
	notifier notification.Notifier
	catalog  []Product
	in       *bufio.Scanner
	out      io.Writer
}

// New builds a shop from its dependencies. A nil catalog gets the default
// product list.
func New(deps Deps) *Shop {
	catalog := deps.Catalog
	if catalog == nil {
		catalog = DefaultCatalog()
	}
	if deps.Logger == nil {
		deps.Logger = logging.Discard()
	}
	return &Shop{
		cfg:      deps.Cfg,
		logger:   deps.Logger,
		notifier: deps.Notifier,
		catalog:  catalog,
		in:       bufio.NewScanner(deps.In),
		out:      deps.Out,
	}
}

// Run executes one shopping session: collect items, pick a payment method,
// and loop through that instrument's menu until the user exits. A closed
// input stream ends the session cleanly.
func (s *Shop) Run(ctx context.Context) error {
	fmt.Fprintln(s.out, "=== Welcome to "+s.cfg.AppName+" ===")

	items, err := s.collectItems()
	if err != nil {
		return s.sessionEnd(err)
	}
	total := Total(items)

	fmt.Fprintln(s.out, "\nItems purchased:")
	for _, item := range items {
		fmt.Fprintf(s.out, "- %s x%d: %s\n", item.Product.Name, item.Quantity, money.Format(item.Subtotal(), s.cfg.Currency))
	}
	fmt.Fprintf(s.out, "\nTotal amount: %s\n", money.Format(total, s.cfg.Currency))

	fmt.Fprintln(s.out, "\nChoose payment method:")
	fmt.Fprintln(s.out, "1. Bank Account")
	fmt.Fprintln(s.out, "2. E-Wallet")
	fmt.Fprintln(s.out, "3. Card")
	fmt.Fprintln(s.out, "4. Cash")

	choice, err := s.readLine("Enter option (1-4): ")
	if err != nil {
		return s.sessionEnd(err)
	}

	switch choice {
	case "1":
		err = s.runBank(ctx, total)
	case "2":
		err = s.runWallet(ctx, total)
	case "3":
		err = s.runCard(ctx)
	case "4":
		err = s.runCash(ctx, total)
	default:
		fmt.Fprintln(s.out, "Invalid choice.")
	}
	return s.sessionEnd(err)
}

// sessionEnd treats a closed input stream as a normal end of session.
func (s *Shop) sessionEnd(err error) error {
	if errors.Is(err, errSessionClosed) {
		return nil
	}
	return err
}

func (s *Shop) collectItems() ([]LineItem, error) {
	fmt.Fprintln(s.out, "\nAvailable products:")
	for i, product := range s.catalog {
		fmt.Fprintf(s.out, "%d. %s - %s\n", i+1, product.Name, money.Format(product.Price, s.cfg.Currency))
	}
	fmt.Fprintln(s.out, "\nEnter the number of the product you want to buy (type 0 to finish):")

	var items []LineItem
	for {
		choice, err := s.readInt("Product number: ")
		if err != nil {
			return nil, err
		}
		if choice == 0 {
			return items, nil
		}
		if choice < 1 || choice > len(s.catalog) {
			fmt.Fprintln(s.out, "Invalid selection. Try again.")
			continue
		}
		product := s.catalog[choice-1]
		quantity, err := s.readInt(fmt.Sprintf("Quantity of %s: ", product.Name))
		if err != nil {
			return nil, err
		}
		if quantity <= 0 {
			fmt.Fprintln(s.out, "Quantity must be at least 1.")
			continue
		}
		items = append(items, LineItem{Product: product, Quantity: quantity})
	}
}

func (s *Shop) runBank(ctx context.Context, total decimal.Decimal) error {
	fmt.Fprintln(s.out, "\nWelcome to the bank account payment system.")

	holder, err := s.readLine("Enter account holder name: ")
	if err != nil {
		return err
	}
	bankName, err := s.readLine("Enter bank name: ")
	if err != nil {
		return err
	}
	accountNumber, err := s.readLine("Enter account number: ")
	if err != nil {
		return err
	}
	paymentID, err := s.readLine("Enter payment ID (blank to generate): ")
	if err != nil {
		return err
	}

	account := bank.New(bank.Input{
		PaymentID:     paymentID,
		Currency:      s.cfg.Currency,
		Amount:        total,
		BankName:      bankName,
		AccountNumber: accountNumber,
		HolderName:    holder,
	})

	for {
		fmt.Fprintln(s.out, "\nChoose an option:")
		fmt.Fprintln(s.out, "1. Deposit")
		fmt.Fprintln(s.out, "2. Withdraw")
		fmt.Fprintln(s.out, "3. Check Balance")
		fmt.Fprintln(s.out, "4. View Payment Details")
		fmt.Fprintln(s.out, "5. Process Payment")
		fmt.Fprintln(s.out, "6. Exit")

		choice, err := s.readLine("Enter your choice (1-6): ")
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			amount, err := s.readAmount("Enter amount to deposit: ")
			if err != nil {
				return err
			}
			balance, err := account.Deposit(amount)
			if err != nil {
				fmt.Fprintln(s.out, friendlyError(err))
				continue
			}
			fmt.Fprintf(s.out, "Deposited %s. New balance: %s\n",
				money.Format(amount, s.cfg.Currency), money.Format(balance, s.cfg.Currency))
		case "2":
			amount, err := s.readAmount("Enter amount to withdraw: ")
			if err != nil {
				return err
			}
			balance, err := account.Withdraw(amount)
			if err != nil {
				fmt.Fprintln(s.out, friendlyError(err))
				continue
			}
			fmt.Fprintf(s.out, "Withdrawn %s. New balance: %s\n",
				money.Format(amount, s.cfg.Currency), money.Format(balance, s.cfg.Currency))
		case "3":
			fmt.Fprintln(s.out, account.CheckBalance())
		case "4":
			fmt.Fprintln(s.out, account.Details())
		case "5":
			s.settle(ctx, account)
		case "6":
			fmt.Fprintln(s.out, "Thank you for using the system!")
			return nil
		default:
			fmt.Fprintln(s.out, "Invalid choice. Please try again.")
		}
	}
}

func (s *Shop) runWallet(ctx context.Context, total decimal.Decimal) error {
	fmt.Fprintln(s.out, "\nWelcome to the e-wallet system.")

	owner, err := s.readLine("Enter your name: ")
	if err != nil {
		return err
	}

	w := wallet.New(owner, total, s.cfg.WalletOpeningBalance)

	for {
		fmt.Fprintln(s.out, "\n====== E-WALLET MENU ======")
		fmt.Fprintln(s.out, "1. Check Balance")
		fmt.Fprintln(s.out, "2. Cash In")
		fmt.Fprintln(s.out, "3. Cash Out")
		fmt.Fprintln(s.out, "4. Send Payment")
		fmt.Fprintln(s.out, "5. Process Payment")
		fmt.Fprintln(s.out, "6. Exit")

		choice, err := s.readLine("Enter your choice (1-6): ")
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			fmt.Fprintln(s.out, w.CheckBalance())
		case "2":
			amount, err := s.readAmount("Enter amount to cash in: ")
			if err != nil {
				return err
			}
			balance, err := w.CashIn(amount)
			if err != nil {
				fmt.Fprintln(s.out, friendlyError(err))
				continue
			}
			fmt.Fprintf(s.out, "Cash-in successful: %s. New balance: %s\n",
				money.Format(amount, w.Currency()), money.Format(balance, w.Currency()))
		case "3":
			amount, err := s.readAmount("Enter amount to cash out: ")
			if err != nil {
				return err
			}
			balance, err := w.CashOut(amount)
			if err != nil {
				fmt.Fprintln(s.out, friendlyError(err))
				continue
			}
			fmt.Fprintf(s.out, "Cash-out successful: %s. New balance: %s\n",
				money.Format(amount, w.Currency()), money.Format(balance, w.Currency()))
		case "4":
			amount, err := s.readAmount("Enter amount to send: ")
			if err != nil {
				return err
			}
			balance, err := w.SendPayment(amount)
			if err != nil {
				fmt.Fprintln(s.out, friendlyError(err))
				continue
			}
			fmt.Fprintf(s.out, "Payment of %s sent successfully. New balance: %s\n",
				money.Format(amount, w.Currency()), money.Format(balance, w.Currency()))
		case "5":
			s.settle(ctx, w)
		case "6":
			fmt.Fprintln(s.out, "Exiting e-wallet. Goodbye!")
			return nil
		default:
			fmt.Fprintln(s.out, "Invalid choice. Please select between 1 and 6.")
		}
	}
}

func (s *Shop) runCard(ctx context.Context) error {
	fmt.Fprintln(s.out, "\nWelcome to the card payment system.")

	number, err := s.readLine("Enter card number: ")
	if err != nil {
		return err
	}
	cvv, err := s.readLine("Enter CVV: ")
	if err != nil {
		return err
	}
	expiry, err := s.readLine("Enter expiry date (MM/YY): ")
	if err != nil {
		return err
	}
	limit, err := s.readAmount("Enter credit limit: ")
	if err != nil {
		return err
	}
	savings, err := s.readAmount("Enter initial savings balance: ")
	if err != nil {
		return err
	}
	password, err := s.readLine("Set a password: ")
	if err != nil {
		return err
	}

	auth, err := s.newAuthenticator(password)
	if err != nil {
		return fmt.Errorf("build authenticator: %w", err)
	}

	c := card.New(card.Input{
		Number:         number,
		CVV:            cvv,
		Expiry:         expiry,
		CreditLimit:    limit,
		SavingsBalance: savings,
		Authenticator:  auth,
	})

	for {
		fmt.Fprintln(s.out, "\nMENU:")
		fmt.Fprintln(s.out, "1. Pay for Purchase (Credit or Savings)")
		fmt.Fprintln(s.out, "2. Deposit Funds")
		fmt.Fprintln(s.out, "3. Make a Payment (from Savings to Credit)")
		fmt.Fprintln(s.out, "4. Check Balance")
		fmt.Fprintln(s.out, "5. View Card Details")
		fmt.Fprintln(s.out, "6. Exit")

		choice, err := s.readLine("Choose an option (1-6): ")
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			account, err := s.readAccountType("Pay using which account? (credit/savings): ")
			if err != nil {
				return err
			}
			amount, err := s.readAmount("Enter payment amount: ")
			if err != nil {
				return err
			}
			password, err := s.readLine("Enter password: ")
			if err != nil {
				return err
			}
			res, err := c.Pay(amount, account, password)
			s.showCardOutcome(ctx, res, err)
		case "2":
			account, err := s.readAccountType("Deposit to which account? (credit/savings): ")
			if err != nil {
				return err
			}
			amount, err := s.readAmount("Enter deposit amount: ")
			if err != nil {
				return err
			}
			password, err := s.readLine("Enter password: ")
			if err != nil {
				return err
			}
			res, err := c.Deposit(amount, account, password)
			s.showCardOutcome(ctx, res, err)
		case "3":
			amount, err := s.readAmount("Enter amount to pay credit from savings: ")
			if err != nil {
				return err
			}
			password, err := s.readLine("Enter password: ")
			if err != nil {
				return err
			}
			res, err := c.MakePayment(amount, password)
			s.showCardOutcome(ctx, res, err)
		case "4":
			account, err := s.readAccountType("Check balance for which account? (credit/savings): ")
			if err != nil {
				return err
			}
			password, err := s.readLine("Enter password: ")
			if err != nil {
				return err
			}
			out, err := c.CheckBalance(account, password)
			if err != nil {
				fmt.Fprintln(s.out, friendlyError(err))
				continue
			}
			fmt.Fprintln(s.out, out)
		case "5":
			password, err := s.readLine("Enter password: ")
			if err != nil {
				return err
			}
			details, err := c.CardDetails(password)
			if err != nil {
				fmt.Fprintln(s.out, friendlyError(err))
				continue
			}
			fmt.Fprintln(s.out, details)
		case "6":
			fmt.Fprintln(s.out, "Thank you for using the card system!")
			return nil
		default:
			fmt.Fprintln(s.out, "Invalid option. Please try again.")
		}
	}
}

func (s *Shop) runCash(ctx context.Context, total decimal.Decimal) error {
	fmt.Fprintln(s.out, "\n--- CASH PAYMENT ---")

	receiptNumber, err := s.readLine("Enter receipt number (blank to generate): ")
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Total amount due: %s\n", money.Format(total, s.cfg.Currency))
	received, err := s.readTender(total)
	if err != nil {
		return err
	}

	tender := cash.New(receiptNumber, total, received)
	tender.PrintReceipt(s.out)
	s.notifyChange(ctx, tender)

	for {
		response, err := s.readLine("\nWould you like to update the amount received or exit? (u/e): ")
		if err != nil {
			return err
		}
		switch response {
		case "u":
			updated, err := s.readTender(tender.AmountDue())
			if err != nil {
				return err
			}
			tender = tender.WithAmountReceived(updated)
			tender.PrintReceipt(s.out)
			s.notifyChange(ctx, tender)
		case "e":
			fmt.Fprintln(s.out, "Thank you.")
			return nil
		default:
			fmt.Fprintln(s.out, "Please enter a valid response [u/e]")
		}
	}
}

// settle runs an instrument's generic settlement and displays the outcome.
func (s *Shop) settle(ctx context.Context, ins instrument.Instrument) {
	if err := ins.Validate(); err != nil {
		fmt.Fprintln(s.out, friendlyError(err))
		return
	}
	res, err := ins.ProcessPayment(ctx)
	if err != nil {
		s.logger.Warn("settlement declined", "instrument", string(ins.Kind()), "error", err)
		fmt.Fprintln(s.out, friendlyError(err))
		return
	}
	s.logger.Info("settlement complete", "instrument", string(res.Kind), "reference", res.TransactionID)
	fmt.Fprintln(s.out, res.Message)
	if s.notifier != nil {
		_ = s.notifier.Send(ctx, notification.Message{
			Kind:       notification.KindSettlement,
			Instrument: res.Kind,
			Reference:  res.TransactionID,
			Body:       res.Message,
		})
	}
}

func (s *Shop) showCardOutcome(ctx context.Context, res instrument.Result, err error) {
	if err != nil {
		fmt.Fprintln(s.out, friendlyError(err))
		return
	}
	fmt.Fprintln(s.out, res.Message)
	if s.notifier != nil {
		_ = s.notifier.Send(ctx, notification.Message{
			Kind:       notification.KindSettlement,
			Instrument: res.Kind,
			Reference:  res.TransactionID,
			Body:       res.Message,
		})
	}
}

func (s *Shop) notifyChange(ctx context.Context, tender *cash.Transaction) {
	if s.notifier == nil {
		return
	}
	_ = s.notifier.Send(ctx, notification.Message{
		Kind:       notification.KindCashChange,
		Instrument: tender.Kind(),
		Reference:  tender.ReceiptNumber(),
		Body:       fmt.Sprintf("change %s", tender.Change().StringFixed(2)),
	})
}

func (s *Shop) readAccountType(prompt string) (card.AccountType, error) {
	line, err := s.readLine(prompt)
	if err != nil {
		return "", err
	}
	account, err := card.ParseAccountType(line)
	if err != nil {
		// Invalid selectors flow through; the instrument reports them.
		return card.AccountType(line), nil
	}
	return account, nil
}

func (s *Shop) newAuthenticator(password string) (card.Authenticator, error) {
	if s.cfg.AuthMode == config.AuthModeBcrypt {
		return card.NewBcryptAuthenticator(password)
	}
	return card.NewPlainAuthenticator(password), nil
}

// friendlyError maps sentinel instrument errors to the messages the terminal
// shows.
func friendlyError(err error) string {
	switch {
	case errors.Is(err, instrument.ErrInsufficientFunds):
		return "Insufficient balance."
	case errors.Is(err, instrument.ErrIncorrectPassword):
		return "Incorrect password."
	case errors.Is(err, instrument.ErrInvalidAccountType):
		return "Invalid account type."
	case errors.Is(err, instrument.ErrNonPositiveAmount):
		return "Amount must be greater than zero."
	default:
		return err.Error()
	}
}
