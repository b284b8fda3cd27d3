package store

const (
	createUser = `INSERT INTO users (username, password)
    VALUES ($1, $2)
    RETURNING id, username, password, created_at;`

	findUserByUsername = `SELECT id, username, password, created_at
    FROM users
    WHERE username = $1;`

	usernameExists = `SELECT EXISTS (
        SELECT 1 FROM users WHERE username = $1
    );`

	createElement = `INSERT INTO elements (number, name, symbol, mass, synthetic, melting, boiling)
    VALUES ($1, $2, $3, $4, $5, $6, $7)
    RETURNING number, name, symbol, mass, synthetic, melting, boiling;`

	getElementByNumber = `SELECT number, name, symbol, mass, synthetic, melting, boiling
    FROM elements
    WHERE number = $1;`

	elementExists = `SELECT EXISTS (
        SELECT 1 FROM elements WHERE number = $1
    );`

	listElements = `SELECT number, name, symbol, mass, synthetic, melting, boiling
    FROM elements
    ORDER BY number;`

	deleteElement = `DELETE FROM elements
    WHERE number = $1;`

	listSymbols = `SELECT symbol, number
    FROM elements
    ORDER BY symbol;`

	listLiquidAt = `SELECT name, melting, boiling
    FROM elements
    WHERE melting <= $1 AND $1 <= boiling;`

	findWidestLiquidRange = `SELECT name, symbol
    FROM elements
    WHERE boiling - melting = (
        SELECT max(boiling - melting)
        FROM elements
    )
    LIMIT 1;`
)

const (
	loadSession = `SELECT user_id, username, expires_at
    FROM sessions
    WHERE id = $1;`

	saveSession = `INSERT INTO sessions (id, user_id, username, expires_at)
    VALUES ($1, $2, $3, $4)
    ON CONFLICT (id) DO UPDATE
    SET user_id = EXCLUDED.user_id,
        username = EXCLUDED.username,
        expires_at = EXCLUDED.expires_at;`

	deleteSession = `DELETE FROM sessions
    WHERE id = $1;`

	deleteExpiredSessions = `DELETE FROM sessions
    WHERE expires_at <= now();`
)
