/*
Package factory implements Skim Token Factory contract.

Factory keeps a registry of lightweight token records. Any account may
register any number of tokens, each one gets an identifier derived from the
creator and the registration sequence number. Factory owner is the fee
receiver of every registered token.

Factory records are separate from Skim Token contract state: supply of a
registered token is changed only with factory mint, and factory transfer
moves GAS between accounts charging 1% fee to the token's fee receiver.
Transfer is paid from the payer's GAS, the payer must sign it with the
witness scope allowing GAS contract, e.g. CustomContracts with GAS hash.

# Contract notifications

TokenCreated notification. It is produced on token registration.

	TokenCreated:
	  - name: token
	    type: Hash160
	  - name: creator
	    type: Hash160
	  - name: name
	    type: String
	  - name: symbol
	    type: String
	  - name: supply
	    type: Integer

TokenMinted notification. It contains minted amount and resulting supply.

	TokenMinted:
	  - name: token
	    type: Hash160
	  - name: amount
	    type: Integer
	  - name: supply
	    type: Integer

Payment notification. It is produced on GAS transfer and contains net amount
paid to the recipient and the fee.

	Payment:
	  - name: token
	    type: Hash160
	  - name: from
	    type: Hash160
	  - name: to
	    type: Hash160
	  - name: amount
	    type: Integer
	  - name: fee
	    type: Integer

MintEnabledChanged and OwnershipLocked notifications.

	MintEnabledChanged:
	  - name: token
	    type: Hash160
	  - name: enabled
	    type: Boolean
	OwnershipLocked:
	  - name: token
	    type: Hash160

# Contract storage scheme

	+--------------------+-------------------------------+-------------------+
	| Key                | Value                         | Description       |
	+--------------------+-------------------------------+-------------------+
	| 'o'                | Hash160                       | factory owner     |
	| 's'                | Integer                       | next sequence     |
	| 'a'                | Array of Hash160              | all tokens        |
	| 'c' + creator      | Array of Hash160              | creator's tokens  |
	| 't' + token        | Struct, see Token             | token record      |
	+--------------------+-------------------------------+-------------------+
*/
package factory
