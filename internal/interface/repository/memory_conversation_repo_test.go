package repository

import (
	"context"
	"fmt"
	"testing"

	"flightchat-service/internal/domain/entity"
)

func TestMemoryConversationAppendAndHistory(t *testing.T) {
	repo := NewMemoryConversationRepository(20)
	ctx := context.Background()

	if err := repo.Append(ctx, "s1", entity.RoleUser, "hello"); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := repo.Append(ctx, "s1", entity.RoleAssistant, "hi there"); err != nil {
		t.Fatalf("Append: %v", err)
	}

	turns, err := repo.History(ctx, "s1")
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(turns) != 2 {
		t.Fatalf("got %d turns, want 2", len(turns))
	}
	if turns[0].Role != entity.RoleUser || turns[0].Content != "hello" {
		t.Errorf("first turn = %+v", turns[0])
	}
	if turns[1].Role != entity.RoleAssistant || turns[1].Content != "hi there" {
		t.Errorf("second turn = %+v", turns[1])
	}
}

func TestMemoryConversationEviction(t *testing.T) {
	repo := NewMemoryConversationRepository(20)
	ctx := context.Background()

	for i := 1; i <= 25; i++ {
		if err := repo.Append(ctx, "s1", entity.RoleUser, fmt.Sprintf("message %d", i)); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}

	turns, err := repo.History(ctx, "s1")
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(turns) != 20 {
		t.Fatalf("got %d turns, want 20", len(turns))
	}
	// Oldest five evicted, order preserved
	if turns[0].Content != "message 6" {
		t.Errorf("first turn = %q, want message 6", turns[0].Content)
	}
	if turns[19].Content != "message 25" {
		t.Errorf("last turn = %q, want message 25", turns[19].Content)
	}
}

func TestMemoryConversationSessionsIsolated(t *testing.T) {
	repo := NewMemoryConversationRepository(20)
	ctx := context.Background()

	repo.Append(ctx, "a", entity.RoleUser, "from a")
	repo.Append(ctx, "b", entity.RoleUser, "from b")

	turnsA, _ := repo.History(ctx, "a")
	turnsB, _ := repo.History(ctx, "b")
	if len(turnsA) != 1 || turnsA[0].Content != "from a" {
		t.Errorf("session a turns = %+v", turnsA)
	}
	if len(turnsB) != 1 || turnsB[0].Content != "from b" {
		t.Errorf("session b turns = %+v", turnsB)
	}
}

func TestMemoryConversationClear(t *testing.T) {
	repo := NewMemoryConversationRepository(20)
	ctx := context.Background()

	repo.Append(ctx, "s1", entity.RoleUser, "hello")
	if err := repo.Clear(ctx, "s1"); err != nil {
		t.Fatalf("Clear: %v", err)
	}

	turns, err := repo.History(ctx, "s1")
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(turns) != 0 {
		t.Errorf("got %d turns after clear, want 0", len(turns))
	}
}
