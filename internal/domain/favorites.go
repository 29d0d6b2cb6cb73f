package domain

// FavoritesState is a set of products keyed by ID, kept in insertion order.
type FavoritesState struct {
	Items []Product `json:"items"`
	Count int       `json:"count"`
}

func EmptyFavorites() FavoritesState {
	return FavoritesState{Items: []Product{}}
}

// Contains reports whether productID is in the set.
func (s FavoritesState) Contains(productID int) bool {
	for _, p := range s.Items {
		if p.ID == productID {
			return true
		}
	}
	return false
}

type FavoritesActionType string

const (
	ActionAddToFavorites      FavoritesActionType = "ADD_TO_FAVORITES"
	ActionRemoveFromFavorites FavoritesActionType = "REMOVE_FROM_FAVORITES"
	ActionClearFavorites      FavoritesActionType = "CLEAR_FAVORITES"
	ActionLoadFavorites       FavoritesActionType = "LOAD_FAVORITES"
)

type FavoritesAction struct {
	Type      FavoritesActionType
	Product   Product
	ProductID int
	Snapshot  FavoritesState
}

func AddToFavorites(p Product) FavoritesAction {
	return FavoritesAction{Type: ActionAddToFavorites, Product: p, ProductID: p.ID}
}

func RemoveFromFavorites(productID int) FavoritesAction {
	return FavoritesAction{Type: ActionRemoveFromFavorites, ProductID: productID}
}

func ClearFavorites() FavoritesAction {
	return FavoritesAction{Type: ActionClearFavorites}
}

func LoadFavorites(snapshot FavoritesState) FavoritesAction {
	return FavoritesAction{Type: ActionLoadFavorites, Snapshot: snapshot}
}
