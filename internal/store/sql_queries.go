package store

const (
	findAccountByUsername = `SELECT id, username, password_hash, profile_image_path
	FROM users
	WHERE username = $1;`

	listUsers = `SELECT id, username FROM users ORDER BY username;`

	listCities   = `SELECT id, name FROM cities ORDER BY name;`
	listCrops    = `SELECT id, name FROM crops ORDER BY name;`
	listSupplies = `SELECT id, name FROM supplies ORDER BY name;`

	listLots = `SELECT l.id, c.id, c.name
	FROM lots l
	LEFT JOIN crops c ON c.id = l.crop_id
	ORDER BY l.id;`

	listFarms = `SELECT id, name, city_id, user_id, addres, dimension, state
	FROM farms
	ORDER BY id;`

	listFarmLots = `SELECT farm_id, crop_id, num_hectareas
	FROM farm_lots
	ORDER BY farm_id, id;`

	createFarm = `INSERT INTO farms (name, city_id, user_id, addres, dimension, state)
	VALUES ($1, $2, $3, $4, $5, $6)
	RETURNING id;`

	updateFarm = `UPDATE farms SET
		name      = $1,
		city_id   = $2,
		user_id   = $3,
		addres    = $4,
		dimension = $5,
		state     = $6
	WHERE id = $7;`

	deleteFarm = `DELETE FROM farms WHERE id = $1;`

	insertFarmLot = `INSERT INTO farm_lots (farm_id, crop_id, num_hectareas) VALUES ($1, $2, $3);`
	clearFarmLots = `DELETE FROM farm_lots WHERE farm_id = $1;`

	listPersons = `SELECT id, first_name, last_name, email, type_document, document, addres, phone, birth_of_date, city_id, state
	FROM persons
	ORDER BY id;`

	createPerson = `INSERT INTO persons (first_name, last_name, email, type_document, document, addres, phone, birth_of_date, city_id, state)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	RETURNING id;`

	updatePerson = `UPDATE persons SET
		first_name    = $1,
		last_name     = $2,
		email         = $3,
		type_document = $4,
		document      = $5,
		addres        = $6,
		phone         = $7,
		birth_of_date = $8,
		city_id       = $9,
		state         = $10
	WHERE id = $11;`

	deletePerson = `DELETE FROM persons WHERE id = $1;`

	listModules = `SELECT id, name, description, position, state FROM modules ORDER BY position, id;`

	createModule = `INSERT INTO modules (name, description, position, state)
	VALUES ($1, $2, $3, $4)
	RETURNING id;`

	updateModule = `UPDATE modules SET
		name        = $1,
		description = $2,
		position    = $3,
		state       = $4
	WHERE id = $5;`

	deleteModule = `DELETE FROM modules WHERE id = $1;`

	listTreatments = `SELECT id, date_treatment, type_treatment, quantity_mix, state
	FROM treatments
	ORDER BY id;`

	listTreatmentLots = `SELECT treatment_id, lot_id
	FROM treatment_lots
	ORDER BY treatment_id, id;`

	listTreatmentSupplies = `SELECT treatment_id, supply_id, dose
	FROM treatment_supplies
	ORDER BY treatment_id, id;`

	createTreatment = `INSERT INTO treatments (date_treatment, type_treatment, quantity_mix, state)
	VALUES ($1, $2, $3, $4)
	RETURNING id;`

	updateTreatment = `UPDATE treatments SET
		date_treatment = $1,
		type_treatment = $2,
		quantity_mix   = $3,
		state          = $4
	WHERE id = $5;`

	deleteTreatment = `DELETE FROM treatments WHERE id = $1;`

	insertTreatmentLot     = `INSERT INTO treatment_lots (treatment_id, lot_id) VALUES ($1, $2);`
	insertTreatmentSupply  = `INSERT INTO treatment_supplies (treatment_id, supply_id, dose) VALUES ($1, $2, $3);`
	clearTreatmentLots     = `DELETE FROM treatment_lots WHERE treatment_id = $1;`
	clearTreatmentSupplies = `DELETE FROM treatment_supplies WHERE treatment_id = $1;`

	listReviews = `SELECT id, date_review, technician, state, farm, crop_code, producer, observations, checklists
	FROM reviews
	ORDER BY id;`

	createReview = `INSERT INTO reviews (date_review, technician, state, farm, crop_code, producer, observations, checklists)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	RETURNING id;`

	updateReview = `UPDATE reviews SET
		date_review  = $1,
		technician   = $2,
		state        = $3,
		farm         = $4,
		crop_code    = $5,
		producer     = $6,
		observations = $7,
		checklists   = $8
	WHERE id = $9;`

	deleteReview = `DELETE FROM reviews WHERE id = $1;`
)
