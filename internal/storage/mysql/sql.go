package mysql

const insertBookingSQL = `
INSERT INTO bookings
  (booking_id, hotel_id, hotel_name, room_type, check_in, check_out,
   adults, children, price_per_night, nights, total_price, taxes, grand_total,
   guest_name, guest_email, guest_phone, special_requests, payment_method,
   booking_date, notified_at)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NULL)
`

const markNotifiedSQL = `
UPDATE bookings SET notified_at = CURRENT_TIMESTAMP
WHERE booking_id = ? AND notified_at IS NULL
`

const upsertUserSQL = `
INSERT INTO users (id, name, email, phone, photo_url, provider)
VALUES (?, ?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
  name      = VALUES(name),
  phone     = VALUES(phone),
  photo_url = VALUES(photo_url),
  provider  = VALUES(provider)
`

// -----------------------------------------------------------------------------
// READ QUERIES
// -----------------------------------------------------------------------------

const bookingColumns = `
  booking_id, hotel_id, hotel_name, room_type, check_in, check_out,
  adults, children, price_per_night, nights, total_price, taxes, grand_total,
  guest_name, guest_email, guest_phone, special_requests, payment_method,
  booking_date, notified_at
`

const getBookingSQL = `SELECT` + bookingColumns + `FROM bookings WHERE booking_id = ?`

// Newest first; aligns with the index on (guest_email, booking_date).
const listBookingsByGuestSQL = `
SELECT` + bookingColumns + `FROM bookings
WHERE guest_email = ?
ORDER BY booking_date DESC, booking_id DESC
`

const listUnnotifiedSQL = `
SELECT` + bookingColumns + `FROM bookings
WHERE notified_at IS NULL
ORDER BY booking_date
LIMIT ?
`

const getUserByEmailSQL = `
SELECT id, name, email, phone, photo_url, provider
FROM users WHERE email = ?
`
