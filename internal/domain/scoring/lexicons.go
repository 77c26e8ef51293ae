package scoring

import "github.com/humorlab/humorlab/internal/domain/text"

// Lexicons shared by more than one theory.
var (
	techTerms = text.NewLexicon(
		"api", "serwer*", "server*", "request*", "endpoint*", "backend*",
		"baza danych", "bazy danych", "database", "ai", "algorytm*", "kod*",
		"internet*", "cyfrow*", "wifi", "router*", "aplikacj*", "komputer*",
		"laptop*", "chatbot*", "program*", "deploy*", "wdraż*", "tesla",
	)

	despairTerms = text.NewLexicon(
		"śmier*", "umier*", "umar*", "samotn*", "rozpacz*", "nicoś*", "pustk*",
		"grób", "grobu", "beznadziej*", "depresj*",
		"death", "dying", "dead", "lonel*", "despair*", "hopeless*", "grave",
	)

	// emotionTerms includes every despair term.
	emotionTerms = text.NewLexicon(
		"smut*", "szczęśli*", "radoś*", "czuj*", "czuć", "uczuci*", "emocj*",
		"kocha*", "miłoś*", "tęskn*", "płacz*", "boi*", "strach*", "wkurz*",
		"złoś*", "sad", "love",
		"śmier*", "umier*", "umar*", "samotn*", "rozpacz*", "nicoś*", "pustk*",
		"grób", "grobu", "beznadziej*", "depresj*",
		"death", "dying", "dead", "lonel*", "despair*", "hopeless*", "grave",
	)

	contrastMarkers = text.NewLexicon(
		"ale", "jednak", "a tu", "zamiast", "tymczasem", "mimo", "chociaż",
		"podczas gdy", "natomiast", "but",
	)

	formalRegister = text.NewLexicon(
		"szanowny", "szanowna", "szanowni", "uprzejmie", "niniejszym",
		"informuję", "informujemy", "pozdrawiam", "z poważaniem", "proszę pana",
		"dear sir",
	)

	informalRegister = text.NewLexicon(
		"spoko", "siema", "kurde", "ziom*", "luz", "elo", "no weź", "masakra",
		"lol", "ogarn*", "wkurza",
	)

	techFailure = text.NewLexicon(
		"nie działa", "nie odpowiada", "padł*", "awari*", "crash*", "błąd",
		"błędu", "timeout*", "zawiesz*", "zawiesił*", "nie mam internetu",
		"offline", "brak zasięgu",
	)

	hyperboleTerms = text.NewLexicon(
		"milion*", "miliard*", "tysiąc*", "nigdy", "zawsze", "wszyscy",
		"wszystko", "totalnie", "kompletnie", "absolutnie", "najgorsz*",
		"najlepsz*", "nieskończ*",
	)
)

// registerShift reports formal and informal vocabulary in the same text.
func registerShift(tokens []string) bool {
	return formalRegister.Any(tokens) && informalRegister.Any(tokens)
}
