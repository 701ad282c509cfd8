package lexicon

// builtin covers material nouns and adjectives, color adjectives, texture
// adjectives and gradient words. Forms are listed already folded (е, not ё).
var builtin = []struct {
	canonical string
	forms     []string
}{
	// materials
	{"stone", []string{"камень", "камня", "камни", "каменный", "каменная", "каменное", "каменные", "каменной", "каменную"}},
	{"granite", []string{"гранит", "гранита", "гранитный", "гранитная", "гранитное", "гранитные", "гранитной"}},
	{"marble", []string{"мрамор", "мрамора", "мраморный", "мраморная", "мраморное", "мраморные"}},
	{"sandstone", []string{"песчаник", "песчаника"}},
	{"brick", []string{"кирпич", "кирпича", "кирпичи", "кирпичный", "кирпичная", "кирпичное", "кирпичные"}},
	{"concrete", []string{"бетон", "бетона", "бетонный", "бетонная", "бетонное", "бетонные"}},
	{"obsidian", []string{"обсидиан", "обсидиановый", "обсидиановая"}},
	{"wood", []string{"дерево", "дерева", "деревянный", "деревянная", "деревянное", "деревянные", "древесина"}},
	{"oak", []string{"дуб", "дуба", "дубовый", "дубовая", "дубовое", "дубовые"}},
	{"pine", []string{"сосна", "сосны", "сосновый", "сосновая", "сосновое", "сосновые"}},
	{"birch", []string{"береза", "березы", "березовый", "березовая", "березовое"}},
	{"mahogany", []string{"махагони"}},
	{"metal", []string{"металл", "металла", "металлический", "металлическая", "металлическое", "металлические"}},
	{"iron", []string{"железо", "железа", "железный", "железная", "железное", "железные"}},
	{"steel", []string{"сталь", "стали", "стальной", "стальная", "стальное", "стальные"}},
	{"copper", []string{"медь", "меди", "медный", "медная", "медное", "медные"}},
	{"gold", []string{"золото", "золота", "золотой", "золотая", "золотое", "золотые"}},
	{"rust", []string{"ржавчина", "ржавчины"}},
	{"glass", []string{"стекло", "стекла", "стеклянный", "стеклянная", "стеклянное", "стеклянные"}},
	{"ice", []string{"лед", "льда", "ледяной", "ледяная", "ледяное", "ледяные"}},
	{"crystal", []string{"кристалл", "кристалла", "хрусталь", "кристаллический", "кристаллическая", "хрустальный", "хрустальная"}},
	{"water", []string{"вода", "воды", "водный", "водная", "водяной"}},
	{"lava", []string{"лава", "лавы", "лавовый", "лавовая"}},
	{"grass", []string{"трава", "травы", "травяной", "травяная"}},
	{"moss", []string{"мох", "мха", "мхом"}},
	{"dirt", []string{"грязь", "земля", "земли", "земляной"}},
	{"sand", []string{"песок", "песка", "песчаный", "песчаная", "песчаное"}},
	{"clay", []string{"глина", "глины", "глиняный", "глиняная", "глиняное"}},
	{"snow", []string{"снег", "снега", "снежный", "снежная", "снежное"}},
	{"leather", []string{"кожа", "кожи", "кожаный", "кожаная", "кожаное"}},
	{"fabric", []string{"ткань", "ткани", "тканевый", "тканевая"}},

	// colors
	{"dark", []string{"темный", "темная", "темное", "темные", "темного"}},
	{"light", []string{"светлый", "светлая", "светлое", "светлые"}},
	{"bright", []string{"яркий", "яркая", "яркое", "яркие"}},
	{"pale", []string{"бледный", "бледная", "бледное"}},
	{"red", []string{"красный", "красная", "красное", "красные"}},
	{"green", []string{"зеленый", "зеленая", "зеленое", "зеленые"}},
	{"blue", []string{"синий", "синяя", "синее", "синие", "голубой", "голубая"}},
	{"yellow", []string{"желтый", "желтая", "желтое", "желтые"}},
	{"orange", []string{"оранжевый", "оранжевая", "оранжевое"}},
	{"purple", []string{"фиолетовый", "фиолетовая", "пурпурный"}},
	{"brown", []string{"коричневый", "коричневая", "коричневое", "бурый"}},
	{"gray", []string{"серый", "серая", "серое", "серые"}},
	{"black", []string{"черный", "черная", "черное", "черные"}},
	{"white", []string{"белый", "белая", "белое", "белые"}},

	// textures
	{"weathered", []string{"выветренный", "выветренная", "обветренный", "обветренная"}},
	{"old", []string{"старый", "старая", "старое", "старые"}},
	{"ancient", []string{"древний", "древняя", "древнее", "древние", "старинный"}},
	{"polished", []string{"полированный", "полированная", "полированное"}},
	{"smooth", []string{"гладкий", "гладкая", "гладкое"}},
	{"rough", []string{"шершавый", "шершавая", "грубый", "грубая", "шероховатый"}},
	{"mossy", []string{"мшистый", "мшистая", "замшелый", "замшелая"}},
	{"wet", []string{"мокрый", "мокрая", "влажный", "влажная"}},
	{"dry", []string{"сухой", "сухая", "сухое"}},
	{"rusty", []string{"ржавый", "ржавая", "ржавое", "ржавые"}},
	{"burnt", []string{"обгоревший", "обгоревшая", "жженый", "горелый"}},
	{"shiny", []string{"блестящий", "блестящая", "глянцевый"}},
	{"matte", []string{"матовый", "матовая", "матовое"}},
	{"dirty", []string{"грязный", "грязная"}},
	{"clean", []string{"чистый", "чистая"}},
	{"cracked", []string{"треснувший", "треснувшая", "потрескавшийся", "потрескавшаяся"}},
	{"frozen", []string{"замерзший", "замерзшая", "мерзлый"}},

	// gradients
	{"vertical", []string{"вертикальный", "вертикальная", "вертикальное"}},
	{"horizontal", []string{"горизонтальный", "горизонтальная"}},
	{"radial", []string{"радиальный", "радиальная"}},
	{"top", []string{"верх", "сверху", "верхний"}},
	{"bottom", []string{"низ", "снизу", "нижний"}},
	{"left", []string{"слева", "левый"}},
	{"right", []string{"справа", "правый"}},
	{"center", []string{"центр", "центральный"}},
	{"edges", []string{"края", "краям"}},
	{"diagonal", []string{"диагональ", "диагональный", "диагональная"}},
}

// Builtin returns a lexicon preloaded with the Russian→English table.
func Builtin() *Lexicon {
	lex := New()
	for _, g := range builtin {
		lex.AddGroup(g.canonical, g.forms)
	}
	return lex
}
