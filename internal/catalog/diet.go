package catalog

import (
	"github.com/jivana-app/jivana/internal/constants"
	"github.com/jivana-app/jivana/internal/models"
)

// DietRecommendations is the built-in vegetarian dish table, keyed by meal
// type.
var DietRecommendations = map[constants.MealType][]models.DietDish{
	constants.MealBreakfast: {
		{Dish: "Poha", Nutrition: "Light, easy to digest, good carbs."},
		{Dish: "Upma", Nutrition: "Semolina-based, often with vegetables, provides energy."},
		{Dish: "Masala Dosa", Nutrition: "Fermented batter, savory, with potato filling."},
		{Dish: "Idli with Sambar", Nutrition: "Steamed, fermented, protein from lentils."},
		{Dish: "Besan Chilla", Nutrition: "Chickpea flour pancake, high in protein."},
		{Dish: "Dahi Paratha", Nutrition: "Flatbread with yogurt, good for gut health."},
	},
	constants.MealLunch: {
		{Dish: "Dal Tadka + Jeera Rice", Nutrition: "Comfort food, protein and carbs."},
		{Dish: "Rajma Chawal", Nutrition: "Kidney beans and rice, rich in fiber and protein."},
		{Dish: "Chole + Phulka", Nutrition: "Chickpea curry with whole wheat flatbread."},
		{Dish: "Vegetable Pulao", Nutrition: "Rice cooked with mixed vegetables, balanced meal."},
		{Dish: "Paneer Bhurji Wrap", Nutrition: "Scrambled paneer in a wrap, high protein."},
		{Dish: "Sambar Rice", Nutrition: "Lentil and vegetable stew with rice, nutritious."},
	},
	constants.MealDinner: {
		{Dish: "Palak Paneer", Nutrition: "Spinach and cottage cheese, iron and protein rich."},
		{Dish: "Veg Khichdi", Nutrition: "Lentil and rice porridge, light and wholesome."},
		{Dish: "Kadai Vegetable", Nutrition: "Mixed vegetables in a spicy tomato gravy."},
		{Dish: "Baingan Bharta", Nutrition: "Smoked eggplant mash, flavorful and healthy."},
		{Dish: "Tofu Bhurji", Nutrition: "Scrambled tofu, excellent plant-based protein."},
		{Dish: "Mixed Dal + Millet Roti", Nutrition: "Variety of lentils with healthy millet bread."},
	},
	constants.MealSnacks: {
		{Dish: "Sprouts Chaat", Nutrition: "Protein-packed, fresh, and crunchy."},
		{Dish: "Chana Chaat", Nutrition: "Chickpea salad, savory and filling."},
		{Dish: "Masala Oats", Nutrition: "Quick, fiber-rich, and customizable."},
		{Dish: "Roasted Makhana", Nutrition: "Fox nuts, light and healthy snack."},
		{Dish: "Peanut Sundal", Nutrition: "Boiled peanuts, good source of protein."},
		{Dish: "Fruit + Curd Bowl", Nutrition: "Vitamins, fiber, and probiotics."},
	},
}
