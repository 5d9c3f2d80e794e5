package postgres

const selectEventCols = `
SELECT e.event_id, e.venue_id, e.title, e.event_type, e.event_date,
       e.base_price, e.status, e.cancelled_at,
       v.name, v.city
FROM events e
JOIN venues v ON v.venue_id = e.venue_id
`

const getEventSQL = selectEventCols + `WHERE e.event_id = $1`

const insertEventSQL = `
INSERT INTO events (venue_id, title, event_type, event_date, base_price, status, cancelled_at)
VALUES ($1,$2,$3,$4,$5,$6,$7)
RETURNING event_id
`

const updateEventSQL = `
UPDATE events SET
  title=$2, event_type=$3, event_date=$4, base_price=$5,
  status=$6, cancelled_at=$7
WHERE event_id=$1
`

const deleteEventSQL = `DELETE FROM events WHERE event_id=$1`

const selectVenueCols = `
SELECT v.venue_id, v.name, v.city, v.capacity,
       (SELECT COUNT(*) FROM events e WHERE e.venue_id = v.venue_id) AS event_count
FROM venues v
`

const getVenueSQL = selectVenueCols + `WHERE v.venue_id = $1`

const insertVenueSQL = `
INSERT INTO venues (name, city, capacity)
VALUES ($1,$2,$3)
RETURNING venue_id
`

const updateVenueSQL = `
UPDATE venues SET name=$2, city=$3, capacity=$4 WHERE venue_id=$1
`

const deleteVenueSQL = `DELETE FROM venues WHERE venue_id=$1`
