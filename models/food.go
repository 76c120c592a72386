package models

// Required keys of a custom food definition, as enforced by the server.
const (
	CustomFoodKeyFoodName    = "foodName"
	CustomFoodKeyServingSize = "servingSize"
	CustomFoodKeyServingUnit = "servingUnit"
	CustomFoodKeyCalories    = "calories"
	CustomFoodKeyUserID      = "userId"
)

// CustomFood is a free-form food definition submitted to
// POST /api/add-custom-food. The server defines the schema; the client only
// injects the owning device identity.
type CustomFood map[string]any

// WithUserID returns a copy of f with the userId key set.
func (f CustomFood) WithUserID(userID string) CustomFood {
	out := make(CustomFood, len(f)+1)
	for k, v := range f {
		out[k] = v
	}
	out[CustomFoodKeyUserID] = userID
	return out
}

// Food is a normalized food entry returned by the search and details
// endpoints. Nutrient values refer to one serving of ServingSize ServingUnit.
type Food struct {
	FdcID         string  `json:"fdcId"`
	Description   string  `json:"description"`
	BrandName     string  `json:"brandName"`
	ServingSize   float64 `json:"servingSize"`
	ServingUnit   string  `json:"servingUnit"`
	PreCalculated bool    `json:"preCalculated"`

	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`

	Cholesterol        *float64 `json:"cholesterol,omitempty"`
	Sodium             *float64 `json:"sodium,omitempty"`
	Fiber              *float64 `json:"fiber,omitempty"`
	Sugar              *float64 `json:"sugar,omitempty"`
	SaturatedFat       *float64 `json:"saturatedFat,omitempty"`
	TransFat           *float64 `json:"transFat,omitempty"`
	PolyunsaturatedFat *float64 `json:"polyunsaturatedFat,omitempty"`
	MonounsaturatedFat *float64 `json:"monounsaturatedFat,omitempty"`
	AddedSugar         *float64 `json:"addedSugar,omitempty"`
	VitaminD           *float64 `json:"vitaminD,omitempty"`
	Calcium            *float64 `json:"calcium,omitempty"`
	Iron               *float64 `json:"iron,omitempty"`
	Potassium          *float64 `json:"potassium,omitempty"`
	VitaminC           *float64 `json:"vitaminC,omitempty"`
}

// Nutrition converts the per-serving values of f into a meal nutrition
// summary.
func (f Food) Nutrition() Nutrition {
	return Nutrition{
		Calories:           f.Calories,
		Protein:            f.Protein,
		Carbs:              f.Carbs,
		Fat:                f.Fat,
		Cholesterol:        f.Cholesterol,
		Sodium:             f.Sodium,
		Fiber:              f.Fiber,
		Sugar:              f.Sugar,
		SaturatedFat:       f.SaturatedFat,
		TransFat:           f.TransFat,
		PolyunsaturatedFat: f.PolyunsaturatedFat,
		MonounsaturatedFat: f.MonounsaturatedFat,
		AddedSugar:         f.AddedSugar,
		VitaminD:           f.VitaminD,
		Calcium:            f.Calcium,
		Iron:               f.Iron,
		Potassium:          f.Potassium,
		VitaminC:           f.VitaminC,
	}
}

// FoodSearchResult is the response body of GET /api/search-food.
type FoodSearchResult struct {
	Foods []Food `json:"foods"`
}
