package i18n

import "golang.org/x/text/language"

// Message keys double as the English text.
const (
	MsgLoggedIn        = "Logged in."
	MsgLoggedOut       = "Logged out."
	MsgNotLoggedIn     = "Not logged in."
	MsgSessionActive   = "Logged in, token %s"
	MsgTokenClaims     = "Subject: %s, expires: %s"
	MsgLoginFirst      = "Please log in first."
	MsgSessionExpired  = "Session expired, please log in again."
	MsgBadCredentials  = "Email and password are required."
	MsgNoBooks         = "No books found."
	MsgBookNotFound    = "Book not found."
	MsgBooksPage       = "Page %d: %d book(s)"
	MsgPromptEmail     = "Email: "
	MsgPromptPassword  = "Password: "
	MsgLanguageSet     = "Language set to %s."
	MsgLanguageCurrent = "Current language: %s"
	MsgLanguageUnknown = "Unsupported language %q, choose one of: %s"
	MsgUnknownCommand  = "Unknown command: %s"
	MsgPriceList       = "Sale price list: %d"
	MsgPriceListUnset  = "Sale price list: not set"
	MsgNetworkError    = "Cannot reach the server."
	MsgBye             = "Bye"
	MsgInvalidID       = "A book id or barcode is required."
	MsgLoginFailed     = "Login failed: %s"
	MsgRequestFailed   = "Request failed: %s"

	LabelID        = "ID"
	LabelTitle     = "Title"
	LabelBarcode   = "Barcode"
	LabelCode      = "Code"
	LabelAuthors   = "Authors"
	LabelPublisher = "Publisher"
	LabelPrice     = "Price"
	LabelDiscount  = "Discounted"
	LabelStock     = "Stock"
	LabelCategory  = "Category"
	LabelPages     = "Pages"
	LabelLanguage  = "Language"
	LabelImage     = "Image"
	LabelSummary   = "Summary"
)

var translations = map[language.Tag]map[string]string{
	language.Turkish: {
		MsgLoggedIn:        "Giriş yapıldı.",
		MsgLoggedOut:       "Çıkış yapıldı.",
		MsgNotLoggedIn:     "Giriş yapılmadı.",
		MsgSessionActive:   "Oturum açık, anahtar %s",
		MsgTokenClaims:     "Kullanıcı: %s, bitiş: %s",
		MsgLoginFirst:      "Lütfen önce giriş yapın.",
		MsgSessionExpired:  "Oturumun süresi doldu, lütfen tekrar giriş yapın.",
		MsgBadCredentials:  "E-posta ve şifre gereklidir.",
		MsgNoBooks:         "Kitap bulunamadı.",
		MsgBookNotFound:    "Kitap bulunamadı.",
		MsgBooksPage:       "Sayfa %d: %d kitap",
		MsgPromptEmail:     "E-posta: ",
		MsgPromptPassword:  "Şifre: ",
		MsgLanguageSet:     "Dil %s olarak ayarlandı.",
		MsgLanguageCurrent: "Geçerli dil: %s",
		MsgLanguageUnknown: "Desteklenmeyen dil %q, şunlardan birini seçin: %s",
		MsgUnknownCommand:  "Bilinmeyen komut: %s",
		MsgPriceList:       "Satış fiyat listesi: %d",
		MsgPriceListUnset:  "Satış fiyat listesi: ayarlanmamış",
		MsgNetworkError:    "Sunucuya ulaşılamıyor.",
		MsgBye:             "Güle güle",
		MsgInvalidID:       "Kitap kimliği veya barkod gereklidir.",
		MsgLoginFailed:     "Giriş başarısız: %s",
		MsgRequestFailed:   "İstek başarısız: %s",
		LabelID:            "No",
		LabelTitle:         "Başlık",
		LabelBarcode:       "Barkod",
		LabelCode:          "Kod",
		LabelAuthors:       "Yazarlar",
		LabelPublisher:     "Yayınevi",
		LabelPrice:         "Fiyat",
		LabelDiscount:      "İndirimli",
		LabelStock:         "Stok",
		LabelCategory:      "Kategori",
		LabelPages:         "Sayfa",
		LabelLanguage:      "Dil",
		LabelImage:         "Görsel",
		LabelSummary:       "Özet",
	},
	language.German: {
		MsgLoggedIn:        "Angemeldet.",
		MsgLoggedOut:       "Abgemeldet.",
		MsgNotLoggedIn:     "Nicht angemeldet.",
		MsgSessionActive:   "Angemeldet, Token %s",
		MsgTokenClaims:     "Benutzer: %s, läuft ab: %s",
		MsgLoginFirst:      "Bitte zuerst anmelden.",
		MsgSessionExpired:  "Sitzung abgelaufen, bitte erneut anmelden.",
		MsgBadCredentials:  "E-Mail und Passwort sind erforderlich.",
		MsgNoBooks:         "Keine Bücher gefunden.",
		MsgBookNotFound:    "Buch nicht gefunden.",
		MsgBooksPage:       "Seite %d: %d Buch/Bücher",
		MsgPromptEmail:     "E-Mail: ",
		MsgPromptPassword:  "Passwort: ",
		MsgLanguageSet:     "Sprache auf %s gesetzt.",
		MsgLanguageCurrent: "Aktuelle Sprache: %s",
		MsgLanguageUnknown: "Nicht unterstützte Sprache %q, wählen Sie eine von: %s",
		MsgUnknownCommand:  "Unbekannter Befehl: %s",
		MsgPriceList:       "Verkaufspreisliste: %d",
		MsgPriceListUnset:  "Verkaufspreisliste: nicht gesetzt",
		MsgNetworkError:    "Server nicht erreichbar.",
		MsgBye:             "Tschüss",
		MsgInvalidID:       "Eine Buch-ID oder ein Barcode ist erforderlich.",
		MsgLoginFailed:     "Anmeldung fehlgeschlagen: %s",
		MsgRequestFailed:   "Anfrage fehlgeschlagen: %s",
		LabelID:            "ID",
		LabelTitle:         "Titel",
		LabelBarcode:       "Barcode",
		LabelCode:          "Code",
		LabelAuthors:       "Autoren",
		LabelPublisher:     "Verlag",
		LabelPrice:         "Preis",
		LabelDiscount:      "Reduziert",
		LabelStock:         "Bestand",
		LabelCategory:      "Kategorie",
		LabelPages:         "Seiten",
		LabelLanguage:      "Sprache",
		LabelImage:         "Bild",
		LabelSummary:       "Zusammenfassung",
	},
	language.French: {
		MsgLoggedIn:        "Connecté.",
		MsgLoggedOut:       "Déconnecté.",
		MsgNotLoggedIn:     "Non connecté.",
		MsgSessionActive:   "Connecté, jeton %s",
		MsgTokenClaims:     "Utilisateur : %s, expire : %s",
		MsgLoginFirst:      "Veuillez d'abord vous connecter.",
		MsgSessionExpired:  "Session expirée, veuillez vous reconnecter.",
		MsgBadCredentials:  "L'e-mail et le mot de passe sont obligatoires.",
		MsgNoBooks:         "Aucun livre trouvé.",
		MsgBookNotFound:    "Livre introuvable.",
		MsgBooksPage:       "Page %d : %d livre(s)",
		MsgPromptEmail:     "E-mail : ",
		MsgPromptPassword:  "Mot de passe : ",
		MsgLanguageSet:     "Langue définie sur %s.",
		MsgLanguageCurrent: "Langue actuelle : %s",
		MsgLanguageUnknown: "Langue %q non prise en charge, choisissez parmi : %s",
		MsgUnknownCommand:  "Commande inconnue : %s",
		MsgPriceList:       "Liste de prix de vente : %d",
		MsgPriceListUnset:  "Liste de prix de vente : non définie",
		MsgNetworkError:    "Impossible de joindre le serveur.",
		MsgBye:             "Au revoir",
		MsgInvalidID:       "Un identifiant ou un code-barres est requis.",
		MsgLoginFailed:     "Échec de la connexion : %s",
		MsgRequestFailed:   "Échec de la requête : %s",
		LabelID:            "ID",
		LabelTitle:         "Titre",
		LabelBarcode:       "Code-barres",
		LabelCode:          "Code",
		LabelAuthors:       "Auteurs",
		LabelPublisher:     "Éditeur",
		LabelPrice:         "Prix",
		LabelDiscount:      "Remisé",
		LabelStock:         "Stock",
		LabelCategory:      "Catégorie",
		LabelPages:         "Pages",
		LabelLanguage:      "Langue",
		LabelImage:         "Image",
		LabelSummary:       "Résumé",
	},
}
