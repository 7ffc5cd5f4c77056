package analyzer

import "regexp"

// Indonesian function words dropped during keyword extraction. Informal
// chat variants (gak, udah, aja) are included alongside formal forms.
var stopwords = map[string]struct{}{}

func init() {
	for _, w := range []string{
		"yang", "dan", "di", "ke", "dari", "untuk", "pada", "dengan", "adalah",
		"itu", "ini", "atau", "juga", "akan", "telah", "sudah", "ada", "bisa",
		"dalam", "tidak", "saya", "kamu", "dia", "kita", "mereka", "kami",
		"aku", "gue", "gw", "lu", "lo", "nya", "sih", "deh", "dong", "kok",
		"kan", "lah", "ya", "iya", "gak", "ga", "nggak", "enggak", "udah",
		"aja", "banget", "yg", "dgn", "utk", "karena", "kalau", "kalo",
		"tapi", "namun", "jadi", "lagi", "masih", "sangat", "sekali", "lebih",
		"paling", "semua", "setiap", "para", "oleh", "saat", "ketika", "bila",
		"agar", "supaya", "seperti", "bagai", "antara", "tentang", "terhadap",
	} {
		stopwords[w] = struct{}{}
	}
}

type topicRule struct {
	name string
	re   *regexp.Regexp
}

// Topic detection is keyword-based, first-match-wins per rule but a text
// may carry several topics. Rules stay in declaration order so the
// learner's category pick (first topic) is stable.
var topicRules = []topicRule{
	{"teknologi", regexp.MustCompile(`(?i)\b(teknologi|komputer|laptop|hp|handphone|smartphone|internet|wifi|aplikasi|software|hardware|coding|program|ai|robot|gadget|android|iphone|ios)\b`)},
	{"politik", regexp.MustCompile(`(?i)\b(politik|presiden|menteri|pemilu|partai|dpr|pemerintah|negara|demokrasi|korupsi|kebijakan)\b`)},
	{"film", regexp.MustCompile(`(?i)\b(film|movie|bioskop|netflix|drama|sinetron|aktor|aktris|sutradara|horror|komedi|trailer)\b`)},
	{"musik", regexp.MustCompile(`(?i)\b(musik|lagu|band|konser|penyanyi|album|gitar|drum|piano|spotify|playlist|lirik)\b`)},
	{"sejarah", regexp.MustCompile(`(?i)\b(sejarah|kerajaan|majapahit|sriwijaya|kemerdekaan|penjajahan|belanda|jepang|proklamasi|pahlawan|candi)\b`)},
	{"kuliner", regexp.MustCompile(`(?i)\b(makanan|makan|kuliner|masak|resep|restoran|warung|nasi|mie|bakso|sate|rendang|sambal|kopi|teh|minuman|enak|lezat|gurih)\b`)},
	{"games", regexp.MustCompile(`(?i)\b(game|games|gaming|mobile legends|ml|pubg|valorant|dota|steam|console|playstation|ps5|xbox|nintendo|esport)\b`)},
	{"pendidikan", regexp.MustCompile(`(?i)\b(sekolah|kuliah|universitas|kampus|belajar|pelajaran|ujian|skripsi|dosen|guru|murid|mahasiswa|beasiswa)\b`)},
	{"bisnis", regexp.MustCompile(`(?i)\b(bisnis|usaha|dagang|jualan|investasi|saham|crypto|bitcoin|uang|duit|modal|untung|rugi|startup|ekonomi)\b`)},
	{"kesehatan", regexp.MustCompile(`(?i)\b(sehat|kesehatan|sakit|dokter|rumah sakit|obat|vitamin|olahraga|diet|vaksin|virus|penyakit)\b`)},
	{"olahraga", regexp.MustCompile(`(?i)\b(bola|sepak ?bola|futsal|basket|badminton|bulutangkis|voli|renang|lari|gym|fitness|liga|timnas|piala)\b`)},
	{"travel", regexp.MustCompile(`(?i)\b(liburan|wisata|travel|jalan-jalan|pantai|gunung|bali|jogja|lombok|hotel|pesawat|tiket|backpacker)\b`)},
	{"anime", regexp.MustCompile(`(?i)\b(anime|manga|naruto|one piece|jujutsu|wibu|otaku|cosplay|jepang|isekai|waifu)\b`)},
	{"gosip", regexp.MustCompile(`(?i)\b(gosip|artis|selebriti|selebgram|influencer|viral|trending|skandal|pacaran|putus|nikah|cerai)\b`)},
	{"relationship", regexp.MustCompile(`(?i)\b(pacar|jodoh|cinta|sayang|gebetan|jomblo|ldr|bucin|galau|mantan|pdkt|baper)\b`)},
	{"bahasa", regexp.MustCompile(`(?i)\b(bahasa|inggris|grammar|vocabulary|toefl|ielts|translate|kosakata|kamus)\b`)},
	{"agama", regexp.MustCompile(`(?i)\b(agama|sholat|shalat|puasa|ramadhan|lebaran|masjid|gereja|doa|ibadah|quran|alkitab)\b`)},
	{"fashion", regexp.MustCompile(`(?i)\b(fashion|baju|celana|sepatu|outfit|ootd|brand|distro|thrift|style)\b`)},
	{"beauty", regexp.MustCompile(`(?i)\b(skincare|makeup|kosmetik|lipstik|serum|sunscreen|glowing|perawatan)\b`)},
	{"otomotif", regexp.MustCompile(`(?i)\b(mobil|motor|otomotif|bensin|oli|modifikasi|touring|honda|yamaha|toyota|suzuki)\b`)},
}

// Sentiment word lists, matched as substrings of individual tokens so
// affixed forms ("menyenangkan", "terburuk") still count.
var positiveWords = []string{
	"bagus", "baik", "keren", "mantap", "hebat", "senang", "suka", "cinta",
	"indah", "cantik", "ganteng", "asik", "asyik", "seru", "lucu", "enak",
	"nikmat", "puas", "sukses", "berhasil", "menang", "juara", "top", "oke",
	"setuju", "benar", "betul", "pintar", "cerdas", "rajin", "semangat",
	"bahagia", "gembira", "syukur", "terbaik", "favorit", "recommended",
}

var negativeWords = []string{
	"jelek", "buruk", "payah", "bodoh", "goblok", "tolol", "benci", "kesal",
	"kesel", "marah", "sedih", "kecewa", "gagal", "kalah", "rugi", "sakit",
	"susah", "sulit", "capek", "lelah", "bosan", "bosen", "males", "malas",
	"takut", "khawatir", "cemas", "stres", "stress", "parah", "hancur",
	"rusak", "salah", "sial", "apes", "nyebelin", "annoying", "terburuk",
}

var (
	gaulStylePattern   = regexp.MustCompile(`(?i)\b(gue|gw|lu|lo|elu|wkwk|wkwkwk|anjay|anjir|njir|bro|sis|gan|cuy|coy|bestie|santuy|mager|gabut|baper|bucin|kepo|gaskeun|gas|mantul|kuy|woles|sans)\b|wkwk`)
	formalStylePattern = regexp.MustCompile(`(?i)\b(saya|anda|bapak|ibu|terima kasih|mohon|silakan|silahkan|berkenan|demikian|hormat)\b`)
)

// Question families, checked in declaration order. "apakah" lives in both
// the factual and yes/no families; factual is checked first and wins.
var (
	factualQuestionPattern = regexp.MustCompile(`(?i)\b(apa|siapa|kapan|dimana|di mana|dmn|apakah)\b`)
	howQuestionPattern     = regexp.MustCompile(`(?i)\b(bagaimana|gimana|gmn|caranya|cara|how)\b`)
	whyQuestionPattern     = regexp.MustCompile(`(?i)\b(mengapa|kenapa|why|knp)\b`)
	yesNoQuestionPattern   = regexp.MustCompile(`(?i)\b(apakah|bukankah|akankah|haruskah|bolehkah|mungkinkah)\b`)
)

var jokePattern = regexp.MustCompile(`(?i)\b(joke|meme|lucu|humor|funny|komedi|lawak|lelucon|receh|dagelan|ngakak)\b`)

var tokenPattern = regexp.MustCompile(`[\p{L}\p{N}]+`)
