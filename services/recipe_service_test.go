package services

import (
	"errors"
	"testing"

	"github.com/Sgonchar89/foodgram-project/errs"
	"github.com/Sgonchar89/foodgram-project/models"
)

func TestCreateRecipe_PersistsAllLineItemsAndTags(t *testing.T) {
	db := testDB(t)
	author := seedUser(t, db, "alice")
	flour := seedIngredient(t, db, "Flour", "g")
	sugar := seedIngredient(t, db, "Sugar", "g")
	breakfast := seedTag(t, db, "Breakfast", "breakfast")
	dinner := seedTag(t, db, "Dinner", "dinner")

	detail, err := NewRecipeService(db).Create(author, RecipeInput{
		Name:        "Pancakes",
		Text:        "mix and fry",
		CookingTime: 20,
		Ingredients: []RecipeIngredientInput{
			{ID: flour.ID, Amount: 200},
			{ID: sugar.ID, Amount: 50},
		},
		Tags: []uint{breakfast.ID, dinner.ID},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if len(detail.Ingredients) != 2 {
		t.Fatalf("got %d line items, want 2", len(detail.Ingredients))
	}
	if len(detail.Tags) != 2 {
		t.Fatalf("got %d tags, want 2", len(detail.Tags))
	}

	var itemCount int64
	db.Model(&models.RecipeIngredient{}).Where("recipe_id = ?", detail.ID).Count(&itemCount)
	if itemCount != 2 {
		t.Errorf("stored %d line items, want 2", itemCount)
	}
}

func TestCreateRecipe_ValidationFailures(t *testing.T) {
	db := testDB(t)
	author := seedUser(t, db, "alice")
	flour := seedIngredient(t, db, "Flour", "g")
	tag := seedTag(t, db, "Breakfast", "breakfast")

	tests := []struct {
		name    string
		input   RecipeInput
		wantErr error
	}{
		{
			name: "zero cooking time",
			input: RecipeInput{
				Name: "Bad", CookingTime: 0,
				Ingredients: []RecipeIngredientInput{{ID: flour.ID, Amount: 100}},
			},
			wantErr: errs.ErrValidation,
		},
		{
			name: "negative cooking time",
			input: RecipeInput{
				Name: "Bad", CookingTime: -5,
				Ingredients: []RecipeIngredientInput{{ID: flour.ID, Amount: 100}},
			},
			wantErr: errs.ErrValidation,
		},
		{
			name: "duplicate ingredient",
			input: RecipeInput{
				Name: "Bad", CookingTime: 10,
				Ingredients: []RecipeIngredientInput{
					{ID: flour.ID, Amount: 100},
					{ID: flour.ID, Amount: 200},
				},
			},
			wantErr: errs.ErrValidation,
		},
		{
			name: "negative amount",
			input: RecipeInput{
				Name: "Bad", CookingTime: 10,
				Ingredients: []RecipeIngredientInput{{ID: flour.ID, Amount: -1}},
			},
			wantErr: errs.ErrValidation,
		},
		{
			name: "duplicate tag",
			input: RecipeInput{
				Name: "Bad", CookingTime: 10,
				Ingredients: []RecipeIngredientInput{{ID: flour.ID, Amount: 100}},
				Tags:        []uint{tag.ID, tag.ID},
			},
			wantErr: errs.ErrValidation,
		},
		{
			name: "unknown ingredient",
			input: RecipeInput{
				Name: "Bad", CookingTime: 10,
				Ingredients: []RecipeIngredientInput{{ID: 9999, Amount: 100}},
			},
			wantErr: errs.ErrNotFound,
		},
	}

	svc := NewRecipeService(db)
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(author, tc.input)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("got %v, want %v", err, tc.wantErr)
			}

			// no partial write may survive a rejected payload
			var count int64
			db.Model(&models.Recipe{}).Count(&count)
			if count != 0 {
				t.Errorf("found %d recipes after failed create, want 0", count)
			}
		})
	}
}

func TestUpdateRecipe_ReplacesLineItemSet(t *testing.T) {
	db := testDB(t)
	author := seedUser(t, db, "alice")
	flour := seedIngredient(t, db, "Flour", "g")
	egg := seedIngredient(t, db, "Egg", "pcs")

	svc := NewRecipeService(db)
	created := seedRecipe(t, db, author, "Dough",
		[]RecipeIngredientInput{{ID: flour.ID, Amount: 200}}, nil)

	updated, err := svc.Update(author, created.ID, RecipeInput{
		Name:        "Dough v2",
		Text:        "richer",
		CookingTime: 15,
		Ingredients: []RecipeIngredientInput{
			{ID: flour.ID, Amount: 300},
			{ID: egg.ID, Amount: 2},
		},
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if len(updated.Ingredients) != 2 {
		t.Fatalf("got %d line items, want 2", len(updated.Ingredients))
	}
	amounts := map[string]int{}
	for _, item := range updated.Ingredients {
		amounts[item.Name] = item.Amount
	}
	if amounts["Flour"] != 300 {
		t.Errorf("Flour amount = %d, want 300 (replaced, not incremented)", amounts["Flour"])
	}
	if amounts["Egg"] != 2 {
		t.Errorf("Egg amount = %d, want 2", amounts["Egg"])
	}

	var itemCount int64
	db.Model(&models.RecipeIngredient{}).Where("recipe_id = ?", created.ID).Count(&itemCount)
	if itemCount != 2 {
		t.Errorf("stored %d line items, want 2", itemCount)
	}
}

func TestUpdateRecipe_OnlyAuthorOrStaff(t *testing.T) {
	db := testDB(t)
	author := seedUser(t, db, "alice")
	stranger := seedUser(t, db, "bob")
	moderator := seedUser(t, db, "mod")
	moderator.Role = models.RoleModerator
	db.Save(moderator)

	flour := seedIngredient(t, db, "Flour", "g")
	created := seedRecipe(t, db, author, "Dough",
		[]RecipeIngredientInput{{ID: flour.ID, Amount: 200}}, nil)

	svc := NewRecipeService(db)
	input := RecipeInput{
		Name: "Hijacked", CookingTime: 5,
		Ingredients: []RecipeIngredientInput{{ID: flour.ID, Amount: 1}},
	}

	if _, err := svc.Update(stranger, created.ID, input); !errors.Is(err, errs.ErrForbidden) {
		t.Errorf("stranger update: got %v, want %v", err, errs.ErrForbidden)
	}
	if _, err := svc.Update(moderator, created.ID, input); err != nil {
		t.Errorf("moderator update: %v", err)
	}
}

func TestDeleteRecipe_RemovesDependents(t *testing.T) {
	db := testDB(t)
	author := seedUser(t, db, "alice")
	fan := seedUser(t, db, "bob")
	flour := seedIngredient(t, db, "Flour", "g")
	created := seedRecipe(t, db, author, "Dough",
		[]RecipeIngredientInput{{ID: flour.ID, Amount: 200}}, nil)

	if _, err := NewFavouriteService(db).Add(fan.ID, created.ID); err != nil {
		t.Fatalf("favourite: %v", err)
	}
	if _, err := NewCartService(db).Add(fan.ID, created.ID); err != nil {
		t.Fatalf("cart: %v", err)
	}

	if err := NewRecipeService(db).Delete(author, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	for name, model := range map[string]interface{}{
		"line items":   &models.RecipeIngredient{},
		"favourites":   &models.Favourite{},
		"cart entries": &models.CartEntry{},
	} {
		var count int64
		db.Model(model).Where("recipe_id = ?", created.ID).Count(&count)
		if count != 0 {
			t.Errorf("%d %s left after recipe delete, want 0", count, name)
		}
	}
}

func TestListRecipes_Filters(t *testing.T) {
	db := testDB(t)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	flour := seedIngredient(t, db, "Flour", "g")
	breakfast := seedTag(t, db, "Breakfast", "breakfast")
	dinner := seedTag(t, db, "Dinner", "dinner")

	pancakes := seedRecipe(t, db, alice, "Pancakes",
		[]RecipeIngredientInput{{ID: flour.ID, Amount: 100}}, []uint{breakfast.ID})
	seedRecipe(t, db, bob, "Stew",
		[]RecipeIngredientInput{{ID: flour.ID, Amount: 10}}, []uint{dinner.ID})

	if _, err := NewFavouriteService(db).Add(bob.ID, pancakes.ID); err != nil {
		t.Fatalf("favourite: %v", err)
	}

	svc := NewRecipeService(db)

	tests := []struct {
		name      string
		filter    RecipeFilter
		viewerID  uint
		wantNames []string
	}{
		{"by author", RecipeFilter{AuthorID: alice.ID}, 0, []string{"Pancakes"}},
		{"by tag slug", RecipeFilter{TagSlugs: []string{"dinner"}}, 0, []string{"Stew"}},
		{"by both tag slugs", RecipeFilter{TagSlugs: []string{"breakfast", "dinner"}}, 0, []string{"Stew", "Pancakes"}},
		{"favorited only", RecipeFilter{OnlyFavorited: true}, bob.ID, []string{"Pancakes"}},
		{"no filter", RecipeFilter{}, 0, []string{"Stew", "Pancakes"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out, err := svc.List(tc.filter, tc.viewerID)
			if err != nil {
				t.Fatalf("list: %v", err)
			}
			var names []string
			for _, r := range out {
				names = append(names, r.Name)
			}
			if len(names) != len(tc.wantNames) {
				t.Fatalf("got %v, want %v", names, tc.wantNames)
			}
			for i := range names {
				if names[i] != tc.wantNames[i] {
					t.Errorf("got %v, want %v", names, tc.wantNames)
					break
				}
			}
		})
	}
}

func TestGetRecipe_ViewerFlags(t *testing.T) {
	db := testDB(t)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	flour := seedIngredient(t, db, "Flour", "g")
	created := seedRecipe(t, db, alice, "Pancakes",
		[]RecipeIngredientInput{{ID: flour.ID, Amount: 100}}, nil)

	if _, err := NewFavouriteService(db).Add(bob.ID, created.ID); err != nil {
		t.Fatalf("favourite: %v", err)
	}
	if _, err := NewFollowService(db).Follow(bob.ID, alice.ID); err != nil {
		t.Fatalf("follow: %v", err)
	}

	svc := NewRecipeService(db)

	asBob, err := svc.Get(created.ID, bob.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !asBob.IsFavorited {
		t.Error("bob favorited the recipe but IsFavorited is false")
	}
	if asBob.IsInShoppingCart {
		t.Error("IsInShoppingCart true without a cart entry")
	}
	if !asBob.Author.IsSubscribed {
		t.Error("bob follows alice but IsSubscribed is false")
	}

	asAnon, err := svc.Get(created.ID, 0)
	if err != nil {
		t.Fatalf("get anonymous: %v", err)
	}
	if asAnon.IsFavorited || asAnon.IsInShoppingCart || asAnon.Author.IsSubscribed {
		t.Error("anonymous viewer must see all flags false")
	}
}
