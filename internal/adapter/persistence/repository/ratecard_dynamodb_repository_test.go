package repository

import (
	"testing"

	"studio_pricing/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func writeKeyID(w types.TransactWriteItem) string {
	s, _ := w.Update.Key["id"].(*types.AttributeValueMemberS)
	if s == nil {
		return ""
	}
	return s.Value
}

func TestActivationWrites(t *testing.T) {
	cards := []entities.RateCard{
		{ID: "rc-a", IsActive: true},
		{ID: "rc-b"},
		{ID: "rc-c"},
	}

	t.Run("deactivates every other card regardless of read state", func(t *testing.T) {
		writes := activationWrites("rate_cards", cards, "rc-b", "2026-08-31T00:00:00Z")

		if len(writes) != len(cards) {
			t.Fatalf("expected one write per card, got %d", len(writes))
		}

		// Two racing activations of different targets must each touch the
		// other's item, so the deactivation set cannot be limited to cards
		// that were active at read time.
		off := map[string]bool{}
		for _, w := range writes[:len(writes)-1] {
			off[writeKeyID(w)] = true
		}
		if !off["rc-a"] || !off["rc-c"] {
			t.Fatalf("expected rc-a and rc-c deactivated, got %v", off)
		}
		if off["rc-b"] {
			t.Fatalf("target must not be deactivated")
		}
	})

	t.Run("target update is last and conditional on existence", func(t *testing.T) {
		writes := activationWrites("rate_cards", cards, "rc-b", "2026-08-31T00:00:00Z")

		last := writes[len(writes)-1]
		if writeKeyID(last) != "rc-b" {
			t.Fatalf("expected target write last, got %q", writeKeyID(last))
		}
		if last.Update.ConditionExpression == nil || *last.Update.ConditionExpression != "attribute_exists(#id)" {
			t.Fatalf("target write must be conditional on existence: %+v", last.Update.ConditionExpression)
		}
		on, _ := last.Update.ExpressionAttributeValues[":on"].(*types.AttributeValueMemberBOOL)
		if on == nil || !on.Value {
			t.Fatalf("target write must set is_active true")
		}
	})

	t.Run("single card yields only the target write", func(t *testing.T) {
		writes := activationWrites("rate_cards", cards[:1], "rc-a", "2026-08-31T00:00:00Z")
		if len(writes) != 1 || writeKeyID(writes[0]) != "rc-a" {
			t.Fatalf("unexpected writes: %d", len(writes))
		}
	})
}
