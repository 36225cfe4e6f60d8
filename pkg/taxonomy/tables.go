package taxonomy

import "github.com/Mr-Fulani/PharmaTurk-sub001/pkg/types"

// Keyword tables per domain. Order of groups and of slots inside a group is
// the configured sidebar order and must stay deterministic, classification
// depends on it.

var medicinesGroups = []Group{
	{
		Key: "antibiotics", Title: "Антибиотики",
		Keywords: []string{"antibiotic", "антибиотик", "penicillin", "пенициллин", "cephalosporin", "цефалоспорин", "macrolide", "макролид", "tetracycline", "тетрациклин"},
		Slots: []Slot{
			{Name: "Пенициллины", Keywords: []string{"penicillin", "пенициллин"}},
			{Name: "Цефалоспорины", Keywords: []string{"cephalosporin", "цефалоспорин"}},
			{Name: "Макролиды", Keywords: []string{"macrolide", "макролид"}},
			{Name: "Тетрациклины", Keywords: []string{"tetracycline", "тетрациклин"}},
		},
	},
	{
		Key: "painkillers", Title: "Обезболивающие",
		Keywords: []string{"analgesic", "painkiller", "pain-relief", "обезболива", "анальгетик", "paracetamol", "ibuprofen", "aspirin", "парацетамол", "ибупрофен", "аспирин"},
		Slots: []Slot{
			{Name: "Парацетамол", Keywords: []string{"paracetamol", "acetaminophen", "парацетамол"}},
			{Name: "Ибупрофен", Keywords: []string{"ibuprofen", "ибупрофен"}},
			{Name: "Аспирин", Keywords: []string{"aspirin", "аспирин"}},
		},
	},
	{
		Key: "cold-flu", Title: "Простуда и грипп",
		Keywords: []string{"cold", "flu", "cough", "простуд", "грипп", "кашел", "nasal", "fever", "насморк", "жаропонижа"},
		Slots: []Slot{
			{Name: "От кашля", Keywords: []string{"cough", "кашел"}},
			{Name: "От насморка", Keywords: []string{"nasal", "rhinitis", "насморк", "ринит"}},
			{Name: "Жаропонижающие", Keywords: []string{"fever", "antipyretic", "жаропонижа"}},
		},
	},
	{
		Key: "digestive", Title: "Пищеварение",
		Keywords: []string{"digestive", "gastro", "stomach", "пищевар", "желудо", "гастро", "enzyme", "probiotic", "antacid", "фермент", "пробиотик", "антацид"},
		Slots: []Slot{
			{Name: "Ферменты", Keywords: []string{"enzyme", "фермент"}},
			{Name: "Пробиотики", Keywords: []string{"probiotic", "пробиотик"}},
			{Name: "Антациды", Keywords: []string{"antacid", "антацид"}},
		},
	},
	{
		Key: "vitamins", Title: "Витамины и добавки",
		Keywords: []string{"vitamin", "supplement", "mineral", "витамин", "добавк", "минерал"},
		Slots: []Slot{
			{Name: "Мультивитамины", Keywords: []string{"multivitamin", "мультивитамин"}},
			{Name: "Витамин D", Keywords: []string{"vitamin-d", "витамин-d", "витамин-д"}},
			{Name: "Омега-3", Keywords: []string{"omega", "омега", "fish-oil"}},
		},
	},
}

var clothingSlots = []Slot{
	{Name: "T-Shirts", Keywords: []string{"t-shirt", "tshirt", "футболк"}},
	{Name: "Hoodies", Keywords: []string{"hoodie", "sweatshirt", "худи", "толстовк"}},
	{Name: "Pants", Keywords: []string{"pants", "trousers", "jeans", "брюк", "джинс", "штан"}},
	{Name: "Jackets", Keywords: []string{"jacket", "coat", "куртк", "пальто"}},
	{Name: "Underwear", Keywords: []string{"underwear", "бель"}},
}

var clothingGroups = []Group{
	{Key: "male", Title: "Male", Gender: "male",
		Keywords: []string{"men", "male", "муж"}, Slots: clothingSlots},
	{Key: "female", Title: "Female", Gender: "female",
		Keywords: []string{"women", "female", "жен"}, Slots: clothingSlots},
	{Key: "kids", Title: "Kids", Gender: "kids",
		Keywords: []string{"kids", "child", "дет"}, Slots: clothingSlots},
}

var shoeSlots = []Slot{
	{Name: "Sneakers", Keywords: []string{"sneaker", "trainer", "кроссовк", "кеды"}},
	{Name: "Boots", Keywords: []string{"boot", "ботин", "сапог"}},
	{Name: "Sandals", Keywords: []string{"sandal", "сандал", "босонож"}},
	{Name: "Slippers", Keywords: []string{"slipper", "тапоч", "шлепан"}},
}

var shoesGroups = []Group{
	{Key: "women", Title: "Women", Gender: "women",
		Keywords: []string{"women", "female", "жен"}, Slots: shoeSlots},
	{Key: "men", Title: "Men", Gender: "men",
		Keywords: []string{"men", "male", "муж"}, Slots: shoeSlots},
	{Key: "kids", Title: "Kids", Gender: "kids",
		Keywords: []string{"kids", "child", "дет"}, Slots: shoeSlots},
}

var jewelryGroups = []Group{
	{
		Key: "jewelry-types", Title: "Украшения",
		Keywords: []string{"ring", "bracelet", "necklace", "earring", "pendant", "chain",
			"кольц", "браслет", "колье", "ожерель", "серьг", "кулон", "подвес", "цепоч"},
		Slots: []Slot{
			{Name: "Кольца", Keywords: []string{"ring", "кольц", "перстен"}},
			{Name: "Браслеты", Keywords: []string{"bracelet", "браслет"}},
			{Name: "Колье и цепочки", Keywords: []string{"necklace", "chain", "колье", "ожерель", "цепоч"}},
			{Name: "Серьги", Keywords: []string{"earring", "серьг"}},
			{Name: "Кулоны", Keywords: []string{"pendant", "кулон", "подвес"}},
		},
	},
	{
		Key: "jewelry-materials", Title: "Материалы",
		Keywords: []string{"gold", "silver", "platinum", "золот", "серебр", "платин"},
		Slots: []Slot{
			{Name: "Золото", Keywords: []string{"gold", "золот"}},
			{Name: "Серебро", Keywords: []string{"silver", "серебр"}},
			{Name: "Платина", Keywords: []string{"platinum", "платин"}},
		},
	},
}

var booksGroups = []Group{
	{
		Key: "fiction", Title: "Fiction",
		Keywords: []string{"fiction", "novel", "fantasy", "detective", "роман", "фантаст", "детектив", "проза"},
		Slots: []Slot{
			{Name: "Novels", Keywords: []string{"novel", "роман", "проза"}},
			{Name: "Fantasy", Keywords: []string{"fantasy", "sci-fi", "фантаст", "фэнтези"}},
			{Name: "Detective", Keywords: []string{"detective", "crime", "thriller", "детектив", "триллер"}},
		},
	},
	{
		Key: "nonfiction", Title: "Non-fiction",
		Keywords: []string{"nonfiction", "non-fiction", "biography", "history", "биограф", "истори", "научно-популяр"},
		Slots: []Slot{
			{Name: "Biography", Keywords: []string{"biography", "memoir", "биограф", "мемуар"}},
			{Name: "History", Keywords: []string{"history", "истори"}},
			{Name: "Popular science", Keywords: []string{"science", "научно"}},
		},
	},
	{
		Key: "children", Title: "Children",
		Keywords: []string{"children", "kids", "дет"},
		Slots: []Slot{
			{Name: "Picture books", Keywords: []string{"picture", "картинк"}},
			{Name: "Fairy tales", Keywords: []string{"tale", "сказк"}},
		},
	},
	{
		Key: "education", Title: "Education",
		Keywords: []string{"education", "textbook", "учебн", "образован", "языков"},
		Slots: []Slot{
			{Name: "Textbooks", Keywords: []string{"textbook", "учебник"}},
			{Name: "Languages", Keywords: []string{"language", "язык"}},
		},
	},
}

var headwearGroups = []Group{
	{
		Key: "headwear", Title: "Headwear",
		Keywords: []string{"cap", "hat", "beanie", "panama", "кепк", "шляп", "шапк", "панам", "бейсбол"},
		Slots: []Slot{
			{Name: "Caps", Keywords: []string{"cap", "кепк", "бейсбол"}},
			{Name: "Hats", Keywords: []string{"hat", "шляп"}},
			{Name: "Beanies", Keywords: []string{"beanie", "шапк"}},
			{Name: "Panamas", Keywords: []string{"panama", "панам"}},
		},
	},
}

var electronicsGroups = []Group{
	{
		Key: "mobile", Title: "Mobile",
		Keywords: []string{"phone", "smartphone", "tablet", "телефон", "смартфон", "планшет"},
		Slots: []Slot{
			{Name: "Smartphones", Keywords: []string{"smartphone", "phone", "смартфон", "телефон"}},
			{Name: "Tablets", Keywords: []string{"tablet", "планшет"}},
			{Name: "Accessories", Keywords: []string{"case", "charger", "чехл", "зарядк"}},
		},
	},
	{
		Key: "computing", Title: "Computing",
		Keywords: []string{"laptop", "computer", "monitor", "ноутбук", "компьютер", "монитор"},
		Slots: []Slot{
			{Name: "Laptops", Keywords: []string{"laptop", "notebook", "ноутбук"}},
			{Name: "Monitors", Keywords: []string{"monitor", "монитор"}},
			{Name: "Peripherals", Keywords: []string{"keyboard", "mouse", "клавиатур", "мыш"}},
		},
	},
	{
		Key: "audio", Title: "Audio",
		Keywords: []string{"headphone", "speaker", "audio", "наушник", "колонк", "аудио"},
		Slots: []Slot{
			{Name: "Headphones", Keywords: []string{"headphone", "earbud", "наушник"}},
			{Name: "Speakers", Keywords: []string{"speaker", "колонк"}},
		},
	},
}

// The general classifier has a single catch-all group and no slots,
// everything in the feed comes out as a leftover item.
var generalGroups = []Group{
	{Key: "all", Title: "Categories"},
}

var classifiers = map[types.Domain]Classifier{
	types.DomainMedicines:   NewKeywordClassifier(types.DomainMedicines, medicinesGroups),
	types.DomainClothing:    NewKeywordClassifier(types.DomainClothing, clothingGroups),
	types.DomainShoes:       NewKeywordClassifier(types.DomainShoes, shoesGroups),
	types.DomainJewelry:     NewKeywordClassifier(types.DomainJewelry, jewelryGroups),
	types.DomainBooks:       NewKeywordClassifier(types.DomainBooks, booksGroups),
	types.DomainHeadwear:    NewKeywordClassifier(types.DomainHeadwear, headwearGroups),
	types.DomainElectronics: NewKeywordClassifier(types.DomainElectronics, electronicsGroups),
}

var general = NewKeywordClassifier(types.DomainGeneral, generalGroups)

// ForDomain returns the classifier configured for the domain, falling back
// to the single-section general classifier.
func ForDomain(d types.Domain) Classifier {
	if c, ok := classifiers[d]; ok {
		return c
	}
	return general
}
