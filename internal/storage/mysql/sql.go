package mysql

// Columns of the hotels table, in the order every statement below uses.
const hotelColumns = "id, name, city, score, review_rate, reviews, room_type, price, rooms_left, " +
	"free_cancellation, no_prepayment_needed, breakfast_included, location_rate, lat, lng"

const hotelPlaceholders = "(?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)"

const upsertHotelsPrefix = "INSERT INTO hotels\n  (" + hotelColumns + ")\nVALUES "

// Use VALUES(col) for broad compatibility with MySQL 5.7 and 8.0.
const upsertHotelsOnDup = " ON DUPLICATE KEY UPDATE\n" +
	"  name                 = VALUES(name),\n" +
	"  city                 = VALUES(city),\n" +
	"  score                = VALUES(score),\n" +
	"  review_rate          = VALUES(review_rate),\n" +
	"  reviews              = VALUES(reviews),\n" +
	"  room_type            = VALUES(room_type),\n" +
	"  price                = VALUES(price),\n" +
	"  rooms_left           = VALUES(rooms_left),\n" +
	"  free_cancellation    = VALUES(free_cancellation),\n" +
	"  no_prepayment_needed = VALUES(no_prepayment_needed),\n" +
	"  breakfast_included   = VALUES(breakfast_included),\n" +
	"  location_rate        = VALUES(location_rate),\n" +
	"  lat                  = VALUES(lat),\n" +
	"  lng                  = VALUES(lng),\n" +
	"  updated_at           = CURRENT_TIMESTAMP\n"

// -----------------------------------------------------------------------------
// READ QUERIES
// -----------------------------------------------------------------------------

// Load order is id order; the dashboard keeps it as the "input order".
const listHotelsSQL = "SELECT " + hotelColumns + " FROM hotels ORDER BY id"

const countHotelsSQL = `SELECT COUNT(*) FROM hotels`
