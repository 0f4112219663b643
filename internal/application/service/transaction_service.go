package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/sangkips/posledger/internal/domain/entity"
	"github.com/sangkips/posledger/internal/domain/enum"
	"github.com/sangkips/posledger/internal/domain/ledger"
	"github.com/sangkips/posledger/internal/domain/repository"
	"github.com/sangkips/posledger/pkg/apperror"
)

// TransactionService registers sales and assembles receipts
type TransactionService struct {
	transactionRepo repository.TransactionRepository
	now             func() time.Time
}

// NewTransactionService creates a new transaction service
func NewTransactionService(transactionRepo repository.TransactionRepository) *TransactionService {
	return &TransactionService{
		transactionRepo: transactionRepo,
		now:             time.Now,
	}
}

// RegisterTransactionInput is a validated submission
type RegisterTransactionInput struct {
	ReceiptNo    string
	RegisteredAt string // local civil, YYYY-MM-DD HH:MM:SS
	CashierName  string
	Items        []RegisterItemInput
}

// RegisterItemInput is one validated line
type RegisterItemInput struct {
	ProductCode     string
	ProductCategory *string
	ProductName     string
	PosCost         *int64
	PriceExcl       int64
	Qty             int64
	TaxRate         enum.TaxRate
}

// Register derives the transaction id, aggregates tax per rate and stores the
// header with all items in one atomic write.
func (s *TransactionService) Register(ctx context.Context, input *RegisterTransactionInput) (*entity.Transaction, error) {
	registeredAt, err := ledger.ParseLocal(input.RegisteredAt)
	if err != nil {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "registered_at", Message: err.Error()},
		})
	}

	transactionID, err := ledger.DeriveTransactionID(input.RegisteredAt, input.ReceiptNo)
	if err != nil {
		return nil, apperror.NewBadRequestError(err.Error())
	}
	businessDate, _ := ledger.BusinessDate(input.RegisteredAt)

	createdAt := s.now().UTC()
	registeredLocal := ledger.FormatLocal(registeredAt)
	registeredUTC := registeredAt.UTC()

	txn := &entity.Transaction{
		TransactionID:   transactionID,
		BusinessDate:    businessDate,
		ReceiptNo:       input.ReceiptNo,
		RegisteredAtJST: &registeredLocal,
		RegisteredAtUTC: &registeredUTC,
		CashierName:     input.CashierName,
		CreatedAtUTC:    createdAt,
	}

	for _, in := range input.Items {
		item := entity.TransactionItem{
			TransactionID:   transactionID,
			ProductCode:     in.ProductCode,
			ProductCategory: in.ProductCategory,
			ProductName:     in.ProductName,
			PosCost:         in.PosCost,
			PriceExcl:       in.PriceExcl,
			Qty:             in.Qty,
			TaxRate:         in.TaxRate,
			CreatedAtUTC:    createdAt,
		}
		txn.Items = append(txn.Items, item)
	}

	summary, err := ledger.Aggregate(txn.Items)
	if err != nil {
		var amountErr *ledger.AmountError
		if errors.As(err, &amountErr) {
			return nil, apperror.NewValidationError([]apperror.FieldError{
				{Field: amountErr.Field, Message: "is too large"},
			})
		}
		return nil, err
	}
	// every line was bounded by Aggregate
	for i := range txn.Items {
		txn.Items[i].LineAmountExcl, _ = ledger.LineAmount(txn.Items[i].PriceExcl, txn.Items[i].Qty)
	}
	summary.ApplyTo(txn)

	caps, err := s.transactionRepo.Capabilities(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.transactionRepo.Create(ctx, caps, txn); err != nil {
		if errors.Is(err, repository.ErrAlreadyRegistered) {
			log.Printf("Transaction %s already registered", transactionID)
			return nil, apperror.NewAlreadyRegisteredError(transactionID)
		}
		log.Printf("Failed to register transaction %s: %v", transactionID, err)
		return nil, err
	}

	log.Printf("Registered transaction %s (%d items, total_incl=%d)", transactionID, len(txn.Items), txn.TotalIncl)
	return txn, nil
}

// GetReceipt looks up a stored transaction by business date and receipt
// number. A missing transaction yields (nil, nil).
func (s *TransactionService) GetReceipt(ctx context.Context, date, receiptNo string) (*entity.Receipt, error) {
	transactionID, err := ledger.DeriveTransactionID(date, receiptNo)
	if err != nil {
		return nil, apperror.NewBadRequestError(err.Error())
	}

	caps, err := s.transactionRepo.Capabilities(ctx)
	if err != nil {
		return nil, err
	}

	txn, err := s.transactionRepo.GetWithItems(ctx, caps, transactionID)
	if err != nil {
		return nil, err
	}
	if txn == nil {
		return nil, nil
	}

	return BuildReceipt(txn), nil
}

// BuildReceipt assembles the receipt view of a stored transaction. The tax
// summary comes from the stored buckets.
func BuildReceipt(txn *entity.Transaction) *entity.Receipt {
	summary := ledger.SummaryFromTransaction(txn)

	receipt := &entity.Receipt{
		TransactionID:   txn.TransactionID,
		ReceiptNo:       txn.ReceiptNo,
		BusinessDate:    txn.BusinessDate,
		RegisteredAtJST: txn.RegisteredAtJST,
		CashierName:     txn.CashierName,
		Items:           make([]entity.ReceiptItem, 0, len(txn.Items)),
		TaxSummary:      summary.Buckets,
		TotalExcl:       txn.TotalExcl,
		TotalIncl:       txn.TotalIncl,
	}

	if txn.RegisteredAtUTC != nil {
		utc := txn.RegisteredAtUTC.UTC().Format(time.RFC3339)
		receipt.RegisteredAtUTC = &utc
	}

	for _, it := range txn.Items {
		receipt.Items = append(receipt.Items, entity.ReceiptItem{
			ProductCode:    it.ProductCode,
			ProductName:    it.ProductName,
			Qty:            it.Qty,
			PriceExcl:      it.PriceExcl,
			LineAmountExcl: it.LineAmountExcl,
			TaxRate:        it.TaxRate,
		})
	}

	return receipt
}
