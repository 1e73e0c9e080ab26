/*
Package token implements Skim Token contract, a NEP-17 fungible token that
skims a configurable fee from every transfer.

Each transfer splits its amount into two parts: the fee is credited to the
fee receiver and the rest (net amount) is credited to the recipient. The fee
is amount*feePercent/10^18 rounded toward zero, so net+fee always equals
the debited amount. The default fee is 1%.

Accounts may mint a fixed amount of tokens once per mint interval (one day by
default) while minting is enabled. Token owner may burn own tokens and manage
token config until the ownership is locked. Lock is permanent: no governance
method and no contract update can succeed after it.

Accounts may allow other accounts to spend their tokens with
increaseAllowance and decreaseAllowance, allowed part is then spent with
transferFrom. Allowance may have an expiration time.

# Contract notifications

Transfer notification. This is a NEP-17 standard notification. A fee-charged
transfer produces two of them: a net part to the recipient and a fee part to
the fee receiver. If the fee is zero, only the first one is produced. Mint is
a transfer from null account, burn is a transfer to null account.

	Transfer:
	  - name: from
	    type: Hash160
	  - name: to
	    type: Hash160
	  - name: amount
	    type: Integer

FeeCharged notification. It is produced once per transfer and contains the net
amount received by the recipient and the fee.

	FeeCharged:
	  - name: from
	    type: Hash160
	  - name: to
	    type: Hash160
	  - name: amount
	    type: Integer
	  - name: fee
	    type: Integer

Approval notification. It is produced on allowance change and contains
resulting allowance.

	Approval:
	  - name: owner
	    type: Hash160
	  - name: spender
	    type: Hash160
	  - name: amount
	    type: Integer
	  - name: expires
	    type: Integer

Config notifications. They are produced on successful governance calls and
contain the new value.

	MintAmountChanged:
	  - name: amount
	    type: Integer
	MintEnabledChanged:
	  - name: enabled
	    type: Boolean
	MintIntervalChanged:
	  - name: interval
	    type: Integer
	FeeReceiverChanged:
	  - name: receiver
	    type: Hash160
	FeePercentChanged:
	  - name: percent
	    type: Integer
	OwnershipTransferred:
	  - name: previousOwner
	    type: Hash160
	  - name: newOwner
	    type: Hash160
	OwnershipLocked:
	  - name: owner
	    type: Hash160

# Contract storage scheme

Contract storage model is described below. Integers are stored as is,
structures are serialized with StdLib.

	+--------------------+-------------------------------+----------------+
	| Key                | Value                         | Description    |
	+--------------------+-------------------------------+----------------+
	| 'a' + account      | Integer                       | balance        |
	| 'm' + account      | Struct {LastMintTime}         | mint info      |
	| 'l' + owner +      | Struct {Amount, Expires}      | allowance      |
	| spender            |                               |                |
	| 'c'                | Struct, see Config            | token config   |
	| 't'                | Struct, see Metadata          | token info     |
	| 'b'                | Integer                       | burned in total|
	+--------------------+-------------------------------+----------------+

Zero balances and allowances are not stored.
*/
package token
